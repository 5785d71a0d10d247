// Package conversion - currency conversion use cases.
package conversion

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/domain/currency"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// ConvertUseCase converts an amount with the injected rate table.
type ConvertUseCase struct {
	converter *currency.Converter
	recorder  *usecases.Recorder
}

// NewConvertUseCase creates a new use case.
func NewConvertUseCase(converter *currency.Converter, recorder *usecases.Recorder) *ConvertUseCase {
	return &ConvertUseCase{
		converter: converter,
		recorder:  recorder,
	}
}

// Execute validates the command and converts the amount.
// Returns domain validation errors or a rate lookup failure.
func (uc *ConvertUseCase) Execute(ctx context.Context, cmd dtos.ConvertCommand) (*dtos.ConversionDTO, error) {
	input := map[string]string{"from": cmd.From, "to": cmd.To, "amount": cmd.Amount}

	return usecases.Run(ctx, uc.recorder, events.OperationConvert, input, func() (*dtos.ConversionDTO, error) {
		conv, err := uc.converter.Convert(cmd.From, cmd.To, cmd.Amount)
		if err != nil {
			return nil, err
		}
		dto := dtos.ToConversionDTO(conv)
		return &dto, nil
	})
}
