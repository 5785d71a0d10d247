package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
	"github.com/Haleralex/pricecalc/internal/pkg/logger"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ginID, ctxID string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		ginID = common.GetRequestID(c)
		ctxID = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("GeneratesNewID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get(common.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, ginID)
		assert.Equal(t, id, ctxID)
	})

	t.Run("UsesProvidedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(common.RequestIDHeader, "custom-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "custom-id-123", w.Header().Get(common.RequestIDHeader))
		assert.Equal(t, "custom-id-123", ginID)
		assert.Equal(t, "custom-id-123", ctxID)
	})

	t.Run("ReplacesOversizedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(common.RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(common.RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("UniquePerRequest", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/test", nil))
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.NotEqual(t, w1.Header().Get(common.RequestIDHeader), w2.Header().Get(common.RequestIDHeader))
	})
}

func TestRequestID_CorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var correlationID string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		correlationID = logger.GetCorrelationID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("PropagatesProvidedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(common.CorrelationIDHeader, "order-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "order-42", w.Header().Get(common.CorrelationIDHeader))
		assert.Equal(t, "order-42", correlationID)
	})

	t.Run("AbsentStaysEmpty", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Empty(t, w.Header().Get(common.CorrelationIDHeader))
		assert.Empty(t, correlationID)
	})

	t.Run("IgnoresOversizedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(common.CorrelationIDHeader, strings.Repeat("c", maxRequestIDLength+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get(common.CorrelationIDHeader))
		assert.Empty(t, correlationID)
	})
}

func TestErrorDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, expose := range []bool{true, false} {
		var got bool
		router := gin.New()
		router.Use(ErrorDetails(expose))
		router.GET("/test", func(c *gin.Context) {
			got = common.ExposeErrors(c)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, expose, got)
	}
}
