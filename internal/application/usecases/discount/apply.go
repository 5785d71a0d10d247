// Package discount - discount (remise) use cases.
package discount

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/domain/discount"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ApplyRemiseUseCase applies a percentage discount.
type ApplyRemiseUseCase struct {
	recorder *usecases.Recorder
}

// NewApplyRemiseUseCase creates a new use case.
func NewApplyRemiseUseCase(recorder *usecases.Recorder) *ApplyRemiseUseCase {
	return &ApplyRemiseUseCase{recorder: recorder}
}

// Execute computes montantRemise and prixFinal.
func (uc *ApplyRemiseUseCase) Execute(ctx context.Context, cmd dtos.RemiseCommand) (*dtos.RemiseDTO, error) {
	input := map[string]string{"prix": cmd.Prix, "pourcentage": cmd.Pourcentage}

	return usecases.Run(ctx, uc.recorder, events.OperationRemise, input, func() (*dtos.RemiseDTO, error) {
		res, err := discount.ApplyRemise(cmd.Prix, cmd.Pourcentage)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToRemiseDTO(res)
		return &dto, nil
	})
}

// CalculateRemiseAmountUseCase computes only the discount amount.
type CalculateRemiseAmountUseCase struct {
	recorder *usecases.Recorder
}

// NewCalculateRemiseAmountUseCase creates a new use case.
func NewCalculateRemiseAmountUseCase(recorder *usecases.Recorder) *CalculateRemiseAmountUseCase {
	return &CalculateRemiseAmountUseCase{recorder: recorder}
}

// Execute returns the rounded discount with the parsed inputs echoed.
func (uc *CalculateRemiseAmountUseCase) Execute(ctx context.Context, cmd dtos.RemiseCommand) (*dtos.RemiseAmountDTO, error) {
	input := map[string]string{"prix": cmd.Prix, "pourcentage": cmd.Pourcentage}

	return usecases.Run(ctx, uc.recorder, events.OperationRemiseAmount, input, func() (*dtos.RemiseAmountDTO, error) {
		params := discount.ValidateParams(cmd.Prix, cmd.Pourcentage)
		if err := params.Err(); err != nil {
			return nil, err
		}
		montant, err := discount.CalculateRemiseAmount(params.Value.Prix, params.Value.Pourcentage)
		if err != nil {
			return nil, err
		}
		return &dtos.RemiseAmountDTO{
			Prix:          params.Value.Prix,
			Pourcentage:   params.Value.Pourcentage,
			MontantRemise: montant,
		}, nil
	})
}
