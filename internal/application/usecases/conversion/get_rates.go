package conversion

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/domain/currency"
)

// GetRatesUseCase lists the exchange-rate table.
type GetRatesUseCase struct {
	rates currency.RateTable
}

// NewGetRatesUseCase creates a new use case.
func NewGetRatesUseCase(rates currency.RateTable) *GetRatesUseCase {
	return &GetRatesUseCase{rates: rates}
}

// Execute returns every pair of the table.
func (uc *GetRatesUseCase) Execute(_ context.Context) *dtos.RatesDTO {
	dto := dtos.ToRatesDTO(uc.rates)
	return &dto
}
