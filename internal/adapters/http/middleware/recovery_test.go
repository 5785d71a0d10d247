package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
)

func newPanicRouter(logOutput io.Writer, expose bool) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorDetails(expose))
	router.Use(Recovery(&RecoveryConfig{
		Logger:           slog.New(slog.NewJSONHandler(logOutput, nil)),
		EnableStackTrace: true,
	}))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})
	router.GET("/normal", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("HidesDetailInProduction", func(t *testing.T) {
		router := newPanicRouter(io.Discard, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erreur interne du serveur"}`, w.Body.String())
	})

	t.Run("ExposesDetailInDevelopment", func(t *testing.T) {
		router := newPanicRouter(io.Discard, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		var body common.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, common.MsgInternalError, body.Error)
		assert.Equal(t, "test panic", body.Message)
	})

	t.Run("LogsPanicWithStack", func(t *testing.T) {
		var buf bytes.Buffer
		router := newPanicRouter(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set("X-Request-ID", "req-panic")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "Panic recovered", entry["msg"])
		assert.Equal(t, "test panic", entry["error"])
		assert.Equal(t, "req-panic", entry["request_id"])
		assert.NotEmpty(t, entry["stack"])
	})

	t.Run("DoesNotAffectNormalRequests", func(t *testing.T) {
		var buf bytes.Buffer
		router := newPanicRouter(&buf, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/normal", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, buf.Len())
	})
}
