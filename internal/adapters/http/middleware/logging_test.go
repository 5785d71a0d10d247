package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggingRouter(buf *bytes.Buffer) *gin.Engine {
	config := DefaultLoggingConfig()
	config.Logger = slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(RequestID())
	router.Use(Logging(config))
	router.GET("/convert", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/bad", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("LogsRequest", func(t *testing.T) {
		var buf bytes.Buffer
		router := newLoggingRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/convert?from=EUR&to=USD&amount=1", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "HTTP Request", entry["msg"])
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "/convert", entry["path"])
		assert.Equal(t, "from=EUR&to=USD&amount=1", entry["query"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, "req-42", entry["request_id"])
	})

	t.Run("LevelByStatus", func(t *testing.T) {
		tests := []struct {
			path  string
			level string
		}{
			{"/bad", "WARN"},
			{"/boom", "ERROR"},
		}

		for _, tt := range tests {
			t.Run(tt.path, func(t *testing.T) {
				var buf bytes.Buffer
				router := newLoggingRouter(&buf)

				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, tt.level, entry["level"])
			})
		}
	})

	t.Run("SkipsProbes", func(t *testing.T) {
		var buf bytes.Buffer
		router := newLoggingRouter(&buf)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, buf.Len())
	})

	t.Run("NilConfig", func(t *testing.T) {
		router := gin.New()
		router.Use(Logging(nil))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
