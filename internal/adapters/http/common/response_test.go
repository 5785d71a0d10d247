package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
)

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/somewhere", nil)
	c.Set(RequestIDKey, "test-request-123")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ============================================
// Test Request ID Functions
// ============================================

func TestGetRequestID(t *testing.T) {
	t.Run("ReturnsRequestID", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.Equal(t, "test-request-123", GetRequestID(c))
	})

	t.Run("ReturnsEmptyWhenNotSet", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})
}

func TestSetRequestID(t *testing.T) {
	c, w := setupTestContext()
	SetRequestID(c, "new-id-456")

	assert.Equal(t, "new-id-456", GetRequestID(c))
	assert.Equal(t, "new-id-456", w.Header().Get(RequestIDHeader))
}

func TestExposeErrors(t *testing.T) {
	c, _ := setupTestContext()
	assert.False(t, ExposeErrors(c))

	SetExposeErrors(c, true)
	assert.True(t, ExposeErrors(c))
}

// ============================================
// Test Response Helpers
// ============================================

func TestBadRequest(t *testing.T) {
	c, w := setupTestContext()

	BadRequest(c, "Le montant doit être un nombre positif")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Le montant doit être un nombre positif"}`, w.Body.String())
}

func TestMissingParameters(t *testing.T) {
	t.Run("ListsPresentOnly", func(t *testing.T) {
		c, w := setupTestContext()

		MissingParameters(c, []string{"from", "to", "amount"}, map[string]string{"from": "EUR"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`{"error":"Paramètres requis manquants","required":["from","to","amount"],"received":{"from":"EUR"}}`,
			w.Body.String())
	})

	t.Run("NilReceivedIsEmptyObject", func(t *testing.T) {
		c, w := setupTestContext()

		MissingParameters(c, []string{"ht", "taux"}, nil)

		body := decode(t, w)
		assert.Equal(t, map[string]interface{}{}, body["received"])
	})
}

func TestRouteNotFound(t *testing.T) {
	c, w := setupTestContext()

	RouteNotFound(c, []string{"GET /", "GET /convert"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, MsgRouteNotFound, body["error"])
	assert.Equal(t, "/somewhere", body["path"])
	assert.Equal(t, "GET", body["method"])
	assert.Len(t, body["availableEndpoints"], 2)
}

func TestTooManyRequests(t *testing.T) {
	c, w := setupTestContext()

	TooManyRequests(c, 30)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":"`+MsgTooManyRequests+`","retryAfter":30}`, w.Body.String())
}

func TestInternalError(t *testing.T) {
	t.Run("HidesDetailByDefault", func(t *testing.T) {
		c, w := setupTestContext()

		InternalError(c, errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erreur interne du serveur"}`, w.Body.String())
		assert.Len(t, c.Errors, 1)
	})

	t.Run("ShowsDetailWhenExposed", func(t *testing.T) {
		c, w := setupTestContext()
		SetExposeErrors(c, true)

		InternalError(c, errors.New("database exploded"))

		assert.JSONEq(t, `{"error":"Erreur interne du serveur","message":"database exploded"}`, w.Body.String())
	})
}

// ============================================
// Test Domain Error Mapping
// ============================================

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name: "ValidationErrors",
			err: domainerrors.ValidationErrors{
				{Field: "ht", Message: "Le montant HT doit être un nombre positif ou nul"},
				{Field: "taux", Message: "Le taux de TVA doit être un nombre entre 0 et 100"},
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Le montant HT doit être un nombre positif ou nul, Le taux de TVA doit être un nombre entre 0 et 100",
		},
		{
			name:       "SingleValidationError",
			err:        domainerrors.ValidationError{Field: "prix", Message: "Le prix doit être un nombre positif ou nul"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Le prix doit être un nombre positif ou nul",
		},
		{
			name:       "RateUnavailable",
			err:        domainerrors.NewRateUnavailableError("GBP", "EUR"),
			wantStatus: http.StatusBadRequest,
			wantError:  "Taux de conversion non disponible pour GBP vers EUR",
		},
		{
			name:       "WrappedRateUnavailable",
			err:        fmt.Errorf("convert: %w", domainerrors.NewRateUnavailableError("EUR", "JPY")),
			wantStatus: http.StatusBadRequest,
			wantError:  "convert: Taux de conversion non disponible pour EUR vers JPY",
		},
		{
			name:       "Unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			HandleDomainError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "message")
		})
	}
}
