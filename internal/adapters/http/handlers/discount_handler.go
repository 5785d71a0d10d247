// Package handlers - HTTP handlers для расчёта скидок (remise).
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ============================================
// Use Case Interfaces
// ============================================

// ApplyRemiseUseCase - интерфейс для скидки в процентах.
type ApplyRemiseUseCase interface {
	Execute(ctx context.Context, cmd dtos.RemiseCommand) (*dtos.RemiseDTO, error)
}

// CalculateRemiseAmountUseCase - интерфейс для расчёта суммы скидки.
type CalculateRemiseAmountUseCase interface {
	Execute(ctx context.Context, cmd dtos.RemiseCommand) (*dtos.RemiseAmountDTO, error)
}

// ApplyRemiseFixeUseCase - интерфейс для фиксированной скидки.
type ApplyRemiseFixeUseCase interface {
	Execute(ctx context.Context, cmd dtos.RemiseFixeCommand) (*dtos.RemiseFixeDTO, error)
}

// CalculatePrixOriginalUseCase - интерфейс для расчёта цены до скидки.
type CalculatePrixOriginalUseCase interface {
	Execute(ctx context.Context, cmd dtos.PrixOriginalCommand) (*dtos.PrixOriginalDTO, error)
}

// ============================================
// Discount Handler
// ============================================

// DiscountHandler обрабатывает запросы скидок.
type DiscountHandler struct {
	applyRemise     ApplyRemiseUseCase
	remiseAmount    CalculateRemiseAmountUseCase
	applyRemiseFixe ApplyRemiseFixeUseCase
	prixOriginal    CalculatePrixOriginalUseCase
}

// NewDiscountHandler создаёт новый DiscountHandler.
func NewDiscountHandler(
	applyRemise ApplyRemiseUseCase,
	remiseAmount CalculateRemiseAmountUseCase,
	applyRemiseFixe ApplyRemiseFixeUseCase,
	prixOriginal CalculatePrixOriginalUseCase,
) *DiscountHandler {
	return &DiscountHandler{
		applyRemise:     applyRemise,
		remiseAmount:    remiseAmount,
		applyRemiseFixe: applyRemiseFixe,
		prixOriginal:    prixOriginal,
	}
}

// Remise применяет скидку в процентах.
//
// @Summary Percentage discount
// @Tags Remise
// @Produce json
// @Param prix query number true "Price, >= 0"
// @Param pourcentage query number true "Discount in percent, 0..100"
// @Success 200 {object} dtos.RemiseResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /remise [get]
func (h *DiscountHandler) Remise(c *gin.Context) {
	q, ok := RequireQuery(c, "prix", "pourcentage")
	if !ok {
		return
	}

	result, err := h.applyRemise.Execute(c.Request.Context(), dtos.RemiseCommand{
		Prix:        q["prix"],
		Pourcentage: q["pourcentage"],
	})
	respond(c, events.OperationRemise, err, func() any { return result.Response() })
}

// Montant рассчитывает сумму скидки.
//
// @Summary Discount amount
// @Tags Remise
// @Produce json
// @Param prix query number true "Price, >= 0"
// @Param pourcentage query number true "Discount in percent, 0..100"
// @Success 200 {object} dtos.RemiseAmountDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /remise/montant [get]
func (h *DiscountHandler) Montant(c *gin.Context) {
	q, ok := RequireQuery(c, "prix", "pourcentage")
	if !ok {
		return
	}

	result, err := h.remiseAmount.Execute(c.Request.Context(), dtos.RemiseCommand{
		Prix:        q["prix"],
		Pourcentage: q["pourcentage"],
	})
	respond(c, events.OperationRemiseAmount, err, func() any { return result })
}

// Fixe применяет скидку фиксированной суммой.
//
// @Summary Fixed-amount discount
// @Tags Remise
// @Produce json
// @Param prix query number true "Price, >= 0"
// @Param montant query number true "Discount amount, 0..prix"
// @Success 200 {object} dtos.RemiseFixeDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /remise/fixe [get]
func (h *DiscountHandler) Fixe(c *gin.Context) {
	q, ok := RequireQuery(c, "prix", "montant")
	if !ok {
		return
	}

	result, err := h.applyRemiseFixe.Execute(c.Request.Context(), dtos.RemiseFixeCommand{
		Prix:    q["prix"],
		Montant: q["montant"],
	})
	respond(c, events.OperationRemiseFixe, err, func() any { return result })
}

// Original восстанавливает цену до скидки.
//
// @Summary Original price
// @Tags Remise
// @Produce json
// @Param prixFinal query number true "Discounted price, >= 0"
// @Param pourcentage query number true "Discount in percent, 0..99.99"
// @Success 200 {object} dtos.PrixOriginalDTO
// @Failure 400 {object} common.ErrorResponse
// @Router /remise/original [get]
func (h *DiscountHandler) Original(c *gin.Context) {
	q, ok := RequireQuery(c, "prixFinal", "pourcentage")
	if !ok {
		return
	}

	result, err := h.prixOriginal.Execute(c.Request.Context(), dtos.PrixOriginalCommand{
		PrixFinal:   q["prixFinal"],
		Pourcentage: q["pourcentage"],
	})
	respond(c, events.OperationPrixOriginal, err, func() any { return result })
}

// RegisterRoutes регистрирует маршруты скидок.
func (h *DiscountHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/remise", h.Remise)

	remise := r.Group("/remise")
	{
		remise.GET("/montant", h.Montant)
		remise.GET("/fixe", h.Fixe)
		remise.GET("/original", h.Original)
	}
}
