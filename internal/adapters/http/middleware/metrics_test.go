package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMetrics_BasicRequest(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/convert", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/convert", "200"))

	req := httptest.NewRequest(http.MethodGet, "/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/convert", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetrics_SkipMetricsEndpoint(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200"))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
}

func TestMetrics_UnknownRoute(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404"))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404")))
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeSuccess},
		{"validation", domainerrors.ValidationErrors{{Field: "x", Message: "bad"}}, OutcomeInvalid},
		{"rate", domainerrors.NewRateUnavailableError("EUR", "JPY"), OutcomeRateUnavailable},
		{"other", errors.New("boom"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestRecordCalculation(t *testing.T) {
	counter := CalculationsTotal.WithLabelValues("tva.ttc", OutcomeInvalid)
	before := testutil.ToFloat64(counter)

	RecordCalculation("tva.ttc", domainerrors.ValidationError{Field: "ht", Message: "bad"})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordConversion(t *testing.T) {
	counter := ConversionsTotal.WithLabelValues("EUR", "USD")
	before := testutil.ToFloat64(counter)

	RecordConversion("EUR", "USD")
	RecordConversion("EUR", "USD")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
