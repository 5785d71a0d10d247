// Package common содержит общие типы для HTTP слоя.
//
// Отдельный пакет, чтобы handlers, middleware и router использовали общие
// тела ответов без циклических импортов.
//
// Каждый ответ API - plain JSON объект: результаты пишутся как есть,
// ошибки содержат строку "error".
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
)

// ============================================
// Messages
// ============================================

const (
	MsgMissingParameters = "Paramètres requis manquants"
	MsgRouteNotFound     = "Route non trouvée"
	MsgInternalError     = "Erreur interne du serveur"
	MsgTooManyRequests   = "Trop de requêtes, veuillez réessayer plus tard"
	MsgNotReady          = "Service non disponible"
)

// ============================================
// Response Bodies
// ============================================

// ErrorResponse - тело ответа 400 и 500.
// Message заполняется только в development.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MissingParametersResponse - тело 400 при отсутствии query параметров.
// Received содержит только переданные параметры.
type MissingParametersResponse struct {
	Error    string            `json:"error"`
	Required []string          `json:"required"`
	Received map[string]string `json:"received"`
}

// NotFoundResponse - тело ответа 404.
type NotFoundResponse struct {
	Error              string   `json:"error"`
	Path               string   `json:"path"`
	Method             string   `json:"method"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// TooManyRequestsResponse - тело ответа 429.
type TooManyRequestsResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// ============================================
// Context Keys
// ============================================

const (
	// RequestIDHeader - заголовок с request ID в запросе и ответе.
	RequestIDHeader = "X-Request-ID"
	// CorrelationIDHeader - заголовок с correlation ID от клиента.
	CorrelationIDHeader = "X-Correlation-ID"
	// RequestIDKey - ключ request ID в gin context.
	RequestIDKey = "request_id"
	// ExposeErrorsKey - ключ gin context, включающий детали ошибок в 500.
	ExposeErrorsKey = "expose_errors"
)

// GetRequestID возвращает Request ID из контекста.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID устанавливает Request ID в контекст и заголовок ответа.
func SetRequestID(c *gin.Context, id string) {
	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
}

// SetExposeErrors включает или выключает детали ошибок в 500 для запроса.
func SetExposeErrors(c *gin.Context, expose bool) {
	c.Set(ExposeErrorsKey, expose)
}

// ExposeErrors сообщает, можно ли показывать детали ошибки в 500.
func ExposeErrors(c *gin.Context) bool {
	return c.GetBool(ExposeErrorsKey)
}

// ============================================
// Response Helpers
// ============================================

// BadRequest отправляет 400 с сообщением.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// MissingParameters отправляет 400 для отсутствующих параметров.
func MissingParameters(c *gin.Context, required []string, received map[string]string) {
	if received == nil {
		received = map[string]string{}
	}
	c.JSON(http.StatusBadRequest, MissingParametersResponse{
		Error:    MsgMissingParameters,
		Required: required,
		Received: received,
	})
}

// RouteNotFound отправляет 404 со списком маршрутов.
func RouteNotFound(c *gin.Context, endpoints []string) {
	c.JSON(http.StatusNotFound, NotFoundResponse{
		Error:              MsgRouteNotFound,
		Path:               c.Request.URL.Path,
		Method:             c.Request.Method,
		AvailableEndpoints: endpoints,
	})
}

// TooManyRequests прерывает запрос с 429.
func TooManyRequests(c *gin.Context, retryAfter int) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, TooManyRequestsResponse{
		Error:      MsgTooManyRequests,
		RetryAfter: retryAfter,
	})
}

// InternalErrorBody собирает тело 500; detail остаётся, только если запрос
// разрешает показ ошибок.
func InternalErrorBody(c *gin.Context, detail string) ErrorResponse {
	body := ErrorResponse{Error: MsgInternalError}
	if ExposeErrors(c) {
		body.Message = detail
	}
	return body
}

// InternalError прерывает запрос с 500.
func InternalError(c *gin.Context, err error) {
	var detail string
	if err != nil {
		detail = err.Error()
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorBody(c, detail))
}

// ============================================
// Domain Error to HTTP Error Mapper
// ============================================

// HandleDomainError преобразует domain error в HTTP response.
//
// Ошибки валидации и отсутствие курса - ошибки клиента, они дают 400 с
// объединённым сообщением; всё остальное - 500.
func HandleDomainError(c *gin.Context, err error) {
	if domainerrors.IsClientError(err) {
		BadRequest(c, err.Error())
		return
	}
	InternalError(c, err)
}
