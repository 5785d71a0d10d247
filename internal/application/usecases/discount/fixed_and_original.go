package discount

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/domain/discount"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ApplyRemiseFixeUseCase subtracts a fixed amount from a price.
type ApplyRemiseFixeUseCase struct {
	recorder *usecases.Recorder
}

// NewApplyRemiseFixeUseCase creates a new use case.
func NewApplyRemiseFixeUseCase(recorder *usecases.Recorder) *ApplyRemiseFixeUseCase {
	return &ApplyRemiseFixeUseCase{recorder: recorder}
}

// Execute computes prixFinal and the equivalent percentage.
func (uc *ApplyRemiseFixeUseCase) Execute(ctx context.Context, cmd dtos.RemiseFixeCommand) (*dtos.RemiseFixeDTO, error) {
	input := map[string]string{"prix": cmd.Prix, "montant": cmd.Montant}

	return usecases.Run(ctx, uc.recorder, events.OperationRemiseFixe, input, func() (*dtos.RemiseFixeDTO, error) {
		res, err := discount.ApplyRemiseFixe(cmd.Prix, cmd.Montant)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToRemiseFixeDTO(res)
		return &dto, nil
	})
}

// CalculatePrixOriginalUseCase reconstructs the price before a discount.
type CalculatePrixOriginalUseCase struct {
	recorder *usecases.Recorder
}

// NewCalculatePrixOriginalUseCase creates a new use case.
func NewCalculatePrixOriginalUseCase(recorder *usecases.Recorder) *CalculatePrixOriginalUseCase {
	return &CalculatePrixOriginalUseCase{recorder: recorder}
}

// Execute computes prixInitial and montantRemise.
func (uc *CalculatePrixOriginalUseCase) Execute(ctx context.Context, cmd dtos.PrixOriginalCommand) (*dtos.PrixOriginalDTO, error) {
	input := map[string]string{"prixFinal": cmd.PrixFinal, "pourcentage": cmd.Pourcentage}

	return usecases.Run(ctx, uc.recorder, events.OperationPrixOriginal, input, func() (*dtos.PrixOriginalDTO, error) {
		res, err := discount.CalculatePrixOriginal(cmd.PrixFinal, cmd.Pourcentage)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToPrixOriginalDTO(res)
		return &dto, nil
	})
}
