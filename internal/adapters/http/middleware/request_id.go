// Package middleware содержит HTTP middleware для обработки запросов.
//
// Middleware в Gin - это функции, которые выполняются до/после handlers.
// Здесь живут сквозные задачи API: request ID, логирование, метрики, CORS,
// rate limiting и обработка паник.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
	"github.com/Haleralex/pricecalc/internal/pkg/logger"
)

// maxRequestIDLength ограничивает длину ID от клиента.
const maxRequestIDLength = 128

// RequestID middleware добавляет уникальный ID к каждому запросу.
//
// X-Request-ID от клиента переиспользуется, иначе генерируется новый UUID.
// ID возвращается в ответе и сохраняется в gin context и в request context,
// чтобы его видели use cases и логи.
// X-Correlation-ID, если передан, возвращается и сохраняется рядом.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(common.RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		common.SetRequestID(c, requestID)
		ctx := logger.WithRequestID(c.Request.Context(), requestID)

		if correlationID := c.GetHeader(common.CorrelationIDHeader); correlationID != "" && len(correlationID) <= maxRequestIDLength {
			c.Header(common.CorrelationIDHeader, correlationID)
			ctx = logger.WithCorrelationID(ctx, correlationID)
		}

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
