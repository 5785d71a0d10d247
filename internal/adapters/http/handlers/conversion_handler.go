// Package handlers - HTTP handlers для конвертации валют.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/middleware"
	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ============================================
// Use Case Interfaces
// ============================================

// ConvertUseCase - интерфейс для конвертации валют.
type ConvertUseCase interface {
	Execute(ctx context.Context, cmd dtos.ConvertCommand) (*dtos.ConversionDTO, error)
}

// GetRatesUseCase - интерфейс для получения таблицы курсов.
type GetRatesUseCase interface {
	Execute(ctx context.Context) *dtos.RatesDTO
}

// ============================================
// Conversion Handler
// ============================================

// ConversionHandler обрабатывает запросы конвертации.
type ConversionHandler struct {
	convert  ConvertUseCase
	getRates GetRatesUseCase
}

// NewConversionHandler создаёт новый ConversionHandler.
func NewConversionHandler(convert ConvertUseCase, getRates GetRatesUseCase) *ConversionHandler {
	return &ConversionHandler{
		convert:  convert,
		getRates: getRates,
	}
}

// Convert конвертирует сумму.
//
// @Summary Convert an amount
// @Tags Conversion
// @Produce json
// @Param from query string true "Source currency (EUR, USD, GBP)"
// @Param to query string true "Target currency (EUR, USD, GBP)"
// @Param amount query number true "Amount, strictly positive"
// @Success 200 {object} dtos.ConversionDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /convert [get]
func (h *ConversionHandler) Convert(c *gin.Context) {
	q, ok := RequireQuery(c, "from", "to", "amount")
	if !ok {
		return
	}

	result, err := h.convert.Execute(c.Request.Context(), dtos.ConvertCommand{
		From:   q["from"],
		To:     q["to"],
		Amount: q["amount"],
	})
	if err == nil {
		middleware.RecordConversion(result.From, result.To)
	}
	respond(c, events.OperationConvert, err, func() any { return result })
}

// Rates возвращает полную таблицу курсов.
//
// @Summary Exchange rate table
// @Tags Conversion
// @Produce json
// @Success 200 {object} dtos.RatesDTO
// @Router /rates [get]
func (h *ConversionHandler) Rates(c *gin.Context) {
	c.JSON(http.StatusOK, h.getRates.Execute(c.Request.Context()))
}

// RegisterRoutes регистрирует маршруты конвертации.
//
// Routes:
// - GET /convert?from&to&amount
// - GET /rates
func (h *ConversionHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/convert", h.Convert)
	r.GET("/rates", h.Rates)
}
