// Package ratelimit - fixed-window request counters for the rate limit
// middleware. MemoryStore keeps counters in the process; RedisStore shares
// them between replicas.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// window - counter of one key.
type window struct {
	count int
	start time.Time
}

// MemoryStore counts requests per key in fixed windows.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a store allowing limit requests per period and
// starts a goroutine evicting idle keys until Close.
func NewMemoryStore(limit int, period time.Duration) *MemoryStore {
	s := &MemoryStore{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Allow counts one request for key.
// It returns whether the request fits, the requests left and the time until
// the window resets.
func (s *MemoryStore) Allow(_ context.Context, key string) (bool, int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= s.period {
		w = &window{start: now}
		s.windows[key] = w
	}

	resetIn := s.period - now.Sub(w.start)
	if w.count >= s.limit {
		return false, 0, resetIn, nil
	}

	w.count++
	return true, s.limit - w.count, resetIn, nil
}

// Limit returns the configured requests per window.
func (s *MemoryStore) Limit() int {
	return s.limit
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Close stops the eviction goroutine.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(s.period * 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evict()
		}
	}
}

func (s *MemoryStore) evict() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, w := range s.windows {
		if now.Sub(w.start) > s.period*2 {
			delete(s.windows, key)
		}
	}
}
