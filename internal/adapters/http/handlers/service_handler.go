// Package handlers - описание сервиса и обработчик 404.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
)

// ServiceInfoResponse - ответ GET /.
type ServiceInfoResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// ServiceHandler описывает API и отвечает на неизвестные маршруты.
type ServiceHandler struct {
	name      string
	version   string
	examples  []string
	available []string
}

// DefaultExamples - примеры вызовов для GET /.
func DefaultExamples() []string {
	return []string{
		"GET /convert?from=EUR&to=USD&amount=100",
		"GET /tva?ht=100&taux=20",
		"GET /remise?prix=100&pourcentage=10",
	}
}

// AvailableEndpoints - маршруты, перечисленные в ответе 404.
func AvailableEndpoints() []string {
	return []string{
		"GET /",
		"GET /convert",
		"GET /rates",
		"GET /tva",
		"GET /tva/ht",
		"GET /tva/montant",
		"GET /tva/taux",
		"GET /remise",
		"GET /remise/montant",
		"GET /remise/fixe",
		"GET /remise/original",
	}
}

// NewServiceHandler создаёт новый ServiceHandler.
func NewServiceHandler(name, version string) *ServiceHandler {
	return &ServiceHandler{
		name:      name,
		version:   version,
		examples:  DefaultExamples(),
		available: AvailableEndpoints(),
	}
}

// Info возвращает описание сервиса.
//
// @Summary Service descriptor
// @Tags Service
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (h *ServiceHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfoResponse{
		Service:   h.name,
		Version:   h.version,
		Status:    "OK",
		Endpoints: h.examples,
	})
}

// NotFound отвечает на любой неизвестный путь или метод.
func (h *ServiceHandler) NotFound(c *gin.Context) {
	common.RouteNotFound(c, h.available)
}

// RegisterRoutes регистрирует GET / и обработчик 404.
func (h *ServiceHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Info)
	router.NoRoute(h.NotFound)
	router.NoMethod(h.NotFound)
}
