// Package vat - VAT use cases.
package vat

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/domain/events"
	"github.com/Haleralex/pricecalc/internal/domain/vat"
)

// ============================================
// CalculateTTC
// ============================================

// CalculateTTCUseCase adds VAT to a tax-exclusive amount.
type CalculateTTCUseCase struct {
	recorder *usecases.Recorder
}

// NewCalculateTTCUseCase creates a new use case.
func NewCalculateTTCUseCase(recorder *usecases.Recorder) *CalculateTTCUseCase {
	return &CalculateTTCUseCase{recorder: recorder}
}

// Execute computes montantTva and ttc.
func (uc *CalculateTTCUseCase) Execute(ctx context.Context, cmd dtos.TTCCommand) (*dtos.TTCDTO, error) {
	input := map[string]string{"ht": cmd.HT, "taux": cmd.Taux}

	return usecases.Run(ctx, uc.recorder, events.OperationTTC, input, func() (*dtos.TTCDTO, error) {
		res, err := vat.CalculateTTC(cmd.HT, cmd.Taux)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToTTCDTO(res)
		return &dto, nil
	})
}

// ============================================
// CalculateHT
// ============================================

// CalculateHTUseCase removes VAT from a tax-inclusive amount.
type CalculateHTUseCase struct {
	recorder *usecases.Recorder
}

// NewCalculateHTUseCase creates a new use case.
func NewCalculateHTUseCase(recorder *usecases.Recorder) *CalculateHTUseCase {
	return &CalculateHTUseCase{recorder: recorder}
}

// Execute computes ht and montantTva.
func (uc *CalculateHTUseCase) Execute(ctx context.Context, cmd dtos.HTCommand) (*dtos.HTDTO, error) {
	input := map[string]string{"ttc": cmd.TTC, "taux": cmd.Taux}

	return usecases.Run(ctx, uc.recorder, events.OperationHT, input, func() (*dtos.HTDTO, error) {
		res, err := vat.CalculateHT(cmd.TTC, cmd.Taux)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToHTDTO(res)
		return &dto, nil
	})
}

// ============================================
// CalculateTvaAmount
// ============================================

// CalculateTvaAmountUseCase computes only the VAT owed.
type CalculateTvaAmountUseCase struct {
	recorder *usecases.Recorder
}

// NewCalculateTvaAmountUseCase creates a new use case.
func NewCalculateTvaAmountUseCase(recorder *usecases.Recorder) *CalculateTvaAmountUseCase {
	return &CalculateTvaAmountUseCase{recorder: recorder}
}

// Execute returns the rounded VAT amount with the parsed inputs echoed.
func (uc *CalculateTvaAmountUseCase) Execute(ctx context.Context, cmd dtos.TTCCommand) (*dtos.TvaAmountDTO, error) {
	input := map[string]string{"ht": cmd.HT, "taux": cmd.Taux}

	return usecases.Run(ctx, uc.recorder, events.OperationTvaAmount, input, func() (*dtos.TvaAmountDTO, error) {
		params := vat.ValidateParams(cmd.HT, cmd.Taux)
		if err := params.Err(); err != nil {
			return nil, err
		}
		montant, err := vat.CalculateTvaAmount(params.Value.HT, params.Value.Taux)
		if err != nil {
			return nil, err
		}
		return &dtos.TvaAmountDTO{
			HT:         params.Value.HT,
			Taux:       params.Value.Taux,
			MontantTva: montant,
		}, nil
	})
}

// ============================================
// GetStandardRates
// ============================================

// GetStandardRatesUseCase returns the reference French VAT rates.
type GetStandardRatesUseCase struct{}

// NewGetStandardRatesUseCase creates a new use case.
func NewGetStandardRatesUseCase() *GetStandardRatesUseCase {
	return &GetStandardRatesUseCase{}
}

// Execute returns the rates keyed by name.
func (uc *GetStandardRatesUseCase) Execute(_ context.Context) *dtos.StandardRatesDTO {
	dto := dtos.ToStandardRatesDTO(vat.StandardRates())
	return &dto
}
