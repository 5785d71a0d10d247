// Package middleware - Rate Limiting middleware.
//
// Запросы считаются по IP клиента в фиксированных окнах через Limiter:
// в памяти процесса или общий через Redis.
package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
)

// Rate limit headers
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// Limiter считает запросы по ключу.
type Limiter interface {
	// Allow counts one request and returns whether it fits, the requests left
	// and the time until the window resets.
	Allow(ctx context.Context, key string) (allowed bool, remaining int, resetIn time.Duration, err error)
	// Limit returns the number of requests allowed per window.
	Limit() int
}

// RateLimitConfig - конфигурация для rate limiting.
type RateLimitConfig struct {
	Limiter Limiter
	Logger  *slog.Logger
	// KeyFunc - ключ лимитирования, по умолчанию IP адрес
	KeyFunc func(*gin.Context) string
	// SkipPaths are never limited
	SkipPaths []string
}

// RateLimit middleware для ограничения количества запросов.
//
// Headers:
// - X-RateLimit-Limit: requests per window
// - X-RateLimit-Remaining: requests left
// - X-RateLimit-Reset: Unix time of the window reset
// - Retry-After: seconds until reset (on 429)
//
// При ошибке limiter запрос пропускается.
func RateLimit(config *RateLimitConfig) gin.HandlerFunc {
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	skipMap := make(map[string]bool, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skipMap[path] = true
	}
	limit := strconv.Itoa(config.Limiter.Limit())

	return func(c *gin.Context) {
		if skipMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		allowed, remaining, resetIn, err := config.Limiter.Allow(c.Request.Context(), keyFunc(c))
		if err != nil {
			RateLimitDecisionsTotal.WithLabelValues("error").Inc()
			log.WarnContext(c.Request.Context(), "rate limiter unavailable, request allowed",
				slog.String("error", err.Error()),
			)
			c.Next()
			return
		}

		c.Header(HeaderRateLimitLimit, limit)
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(remaining))
		c.Header(HeaderRateLimitReset, strconv.FormatInt(time.Now().Add(resetIn).Unix(), 10))

		if !allowed {
			RateLimitDecisionsTotal.WithLabelValues("limited").Inc()

			retrySeconds := int(resetIn.Seconds())
			if retrySeconds < 1 {
				retrySeconds = 1
			}
			c.Header(HeaderRetryAfter, strconv.Itoa(retrySeconds))
			common.TooManyRequests(c, retrySeconds)
			return
		}

		RateLimitDecisionsTotal.WithLabelValues("allowed").Inc()
		c.Next()
	}
}
