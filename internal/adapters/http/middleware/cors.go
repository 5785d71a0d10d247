// Package middleware - CORS middleware.
//
// Cross-Origin Resource Sharing (CORS) позволяет браузерам вызывать API
// с любого origin.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
)

// CORSConfig - конфигурация CORS.
type CORSConfig struct {
	// AllowOrigins - allowed origins, "*" allows all
	AllowOrigins []string
	// AllowMethods - allowed HTTP methods
	AllowMethods []string
	// AllowHeaders - allowed request headers
	AllowHeaders []string
	// ExposeHeaders - headers readable by the client
	ExposeHeaders []string
	// MaxAge - preflight cache duration (seconds)
	MaxAge int
}

// DefaultCORSConfig - любой origin, только read-only методы.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			common.RequestIDHeader,
			common.CorrelationIDHeader,
		},
		ExposeHeaders: []string{
			common.RequestIDHeader,
			common.CorrelationIDHeader,
			HeaderRateLimitLimit,
			HeaderRateLimitRemaining,
			HeaderRateLimitReset,
		},
		MaxAge: 86400, // 24h
	}
}

// CORS middleware для обработки Cross-Origin запросов.
//
// Preflight OPTIONS запросы получают 204 и не доходят до handlers.
func CORS(config *CORSConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultCORSConfig()
	}

	allowMethods := strings.Join(config.AllowMethods, ", ")
	allowHeaders := strings.Join(config.AllowHeaders, ", ")
	exposeHeaders := strings.Join(config.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	allowAllOrigins := len(config.AllowOrigins) == 1 && config.AllowOrigins[0] == "*"
	originsMap := make(map[string]bool)
	if !allowAllOrigins {
		for _, origin := range config.AllowOrigins {
			originsMap[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var allowedOrigin string
		if allowAllOrigins {
			allowedOrigin = "*"
		} else if originsMap[origin] {
			allowedOrigin = origin
		}

		if allowedOrigin == "" {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Expose-Headers", exposeHeaders)
		c.Header("Access-Control-Max-Age", maxAge)
		if !allowAllOrigins {
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
