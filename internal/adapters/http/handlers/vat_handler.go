// Package handlers - HTTP handlers для расчёта TVA.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ============================================
// Use Case Interfaces
// ============================================

// CalculateTTCUseCase - интерфейс для перевода HT в TTC.
type CalculateTTCUseCase interface {
	Execute(ctx context.Context, cmd dtos.TTCCommand) (*dtos.TTCDTO, error)
}

// CalculateHTUseCase - интерфейс для перевода TTC в HT.
type CalculateHTUseCase interface {
	Execute(ctx context.Context, cmd dtos.HTCommand) (*dtos.HTDTO, error)
}

// CalculateTvaAmountUseCase - интерфейс для расчёта суммы TVA.
type CalculateTvaAmountUseCase interface {
	Execute(ctx context.Context, cmd dtos.TTCCommand) (*dtos.TvaAmountDTO, error)
}

// GetStandardRatesUseCase - интерфейс для стандартных ставок TVA.
type GetStandardRatesUseCase interface {
	Execute(ctx context.Context) *dtos.StandardRatesDTO
}

// ============================================
// VAT Handler
// ============================================

// VatHandler обрабатывает запросы TVA.
type VatHandler struct {
	calculateTTC       CalculateTTCUseCase
	calculateHT        CalculateHTUseCase
	calculateTvaAmount CalculateTvaAmountUseCase
	standardRates      GetStandardRatesUseCase
}

// NewVatHandler создаёт новый VatHandler.
func NewVatHandler(
	calculateTTC CalculateTTCUseCase,
	calculateHT CalculateHTUseCase,
	calculateTvaAmount CalculateTvaAmountUseCase,
	standardRates GetStandardRatesUseCase,
) *VatHandler {
	return &VatHandler{
		calculateTTC:       calculateTTC,
		calculateHT:        calculateHT,
		calculateTvaAmount: calculateTvaAmount,
		standardRates:      standardRates,
	}
}

// TTC рассчитывает цену TTC.
//
// @Summary Add VAT
// @Tags TVA
// @Produce json
// @Param ht query number true "Tax-exclusive amount, >= 0"
// @Param taux query number true "VAT rate in percent, 0..100"
// @Success 200 {object} dtos.TTCResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /tva [get]
func (h *VatHandler) TTC(c *gin.Context) {
	q, ok := RequireQuery(c, "ht", "taux")
	if !ok {
		return
	}

	result, err := h.calculateTTC.Execute(c.Request.Context(), dtos.TTCCommand{HT: q["ht"], Taux: q["taux"]})
	respond(c, events.OperationTTC, err, func() any { return result.Response() })
}

// HT рассчитывает цену HT.
//
// @Summary Remove VAT
// @Tags TVA
// @Produce json
// @Param ttc query number true "Tax-inclusive amount, >= 0"
// @Param taux query number true "VAT rate in percent, 0..100"
// @Success 200 {object} dtos.HTDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /tva/ht [get]
func (h *VatHandler) HT(c *gin.Context) {
	q, ok := RequireQuery(c, "ttc", "taux")
	if !ok {
		return
	}

	result, err := h.calculateHT.Execute(c.Request.Context(), dtos.HTCommand{TTC: q["ttc"], Taux: q["taux"]})
	respond(c, events.OperationHT, err, func() any { return result })
}

// Montant рассчитывает сумму TVA.
//
// @Summary VAT amount
// @Tags TVA
// @Produce json
// @Param ht query number true "Tax-exclusive amount, >= 0"
// @Param taux query number true "VAT rate in percent, 0..100"
// @Success 200 {object} dtos.TvaAmountDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /tva/montant [get]
func (h *VatHandler) Montant(c *gin.Context) {
	q, ok := RequireQuery(c, "ht", "taux")
	if !ok {
		return
	}

	result, err := h.calculateTvaAmount.Execute(c.Request.Context(), dtos.TTCCommand{HT: q["ht"], Taux: q["taux"]})
	respond(c, events.OperationTvaAmount, err, func() any { return result })
}

// Taux возвращает стандартные ставки TVA во Франции.
//
// @Summary Standard VAT rates
// @Tags TVA
// @Produce json
// @Success 200 {object} dtos.StandardRatesDTO
// @Router /tva/taux [get]
func (h *VatHandler) Taux(c *gin.Context) {
	c.JSON(http.StatusOK, h.standardRates.Execute(c.Request.Context()))
}

// RegisterRoutes регистрирует маршруты TVA.
func (h *VatHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/tva", h.TTC)

	tva := r.Group("/tva")
	{
		tva.GET("/ht", h.HT)
		tva.GET("/montant", h.Montant)
		tva.GET("/taux", h.Taux)
	}
}
