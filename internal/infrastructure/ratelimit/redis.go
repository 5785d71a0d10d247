package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig - connection settings for RedisStore.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// RedisStore counts requests per key in fixed windows shared through Redis.
// Each window is its own key ("<prefix><key>:<window start>") expiring with
// the window.
type RedisStore struct {
	client *redis.Client
	prefix string
	limit  int
	period time.Duration
	now    func() time.Time
}

// NewRedisStore creates a store. No connection is made until first use.
func NewRedisStore(cfg RedisConfig, limit int, period time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MaxRetries:   -1,
	})

	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
		limit:  limit,
		period: period,
		now:    time.Now,
	}
}

// Allow counts one request for key. Errors from Redis are returned to the
// caller, which decides whether to let the request through.
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, int, time.Duration, error) {
	now := s.now()
	start := now.Truncate(s.period)
	resetIn := start.Add(s.period).Sub(now)
	redisKey := s.prefix + key + ":" + strconv.FormatInt(start.Unix(), 10)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.PExpire(ctx, redisKey, s.period)
		return nil
	})
	if err != nil {
		return true, s.limit, resetIn, fmt.Errorf("rate limit counter %s: %w", redisKey, err)
	}

	count := int(incr.Val())
	if count > s.limit {
		return false, 0, resetIn, nil
	}
	return true, s.limit - count, resetIn, nil
}

// Limit returns the configured requests per window.
func (s *RedisStore) Limit() int {
	return s.limit
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
