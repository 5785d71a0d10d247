package discount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	domaindiscount "github.com/Haleralex/pricecalc/internal/domain/discount"
	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
	"github.com/Haleralex/pricecalc/internal/domain/events"
)

type mockEventPublisher struct {
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(_ context.Context, event events.DomainEvent) error {
	m.publishedEvents = append(m.publishedEvents, event)
	return nil
}

func (m *mockEventPublisher) Close() error { return nil }

func newRecorder() (*usecases.Recorder, *mockEventPublisher) {
	pub := &mockEventPublisher{}
	return usecases.NewRecorder(pub, nil, nil), pub
}

func TestApplyRemiseUseCase(t *testing.T) {
	rec, pub := newRecorder()
	uc := NewApplyRemiseUseCase(rec)

	result, err := uc.Execute(context.Background(), dtos.RemiseCommand{Prix: "33.33", Pourcentage: "10"})

	require.NoError(t, err)
	assert.Equal(t, 33.33, result.PrixInitial)
	assert.Equal(t, 3.33, result.MontantRemise)
	assert.Equal(t, 30.0, result.PrixFinal)

	require.Len(t, pub.publishedEvents, 1)
	assert.Equal(t, events.OperationRemise, pub.publishedEvents[0].(*events.CalculationPerformed).Operation)
}

func TestApplyRemiseUseCase_FullDiscount(t *testing.T) {
	rec, _ := newRecorder()

	result, err := NewApplyRemiseUseCase(rec).Execute(context.Background(), dtos.RemiseCommand{Prix: "100", Pourcentage: "100"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PrixFinal)
	assert.Equal(t, 100.0, result.MontantRemise)
}

func TestCalculateRemiseAmountUseCase(t *testing.T) {
	rec, _ := newRecorder()
	uc := NewCalculateRemiseAmountUseCase(rec)

	result, err := uc.Execute(context.Background(), dtos.RemiseCommand{Prix: "80", Pourcentage: "12.5"})

	require.NoError(t, err)
	assert.Equal(t, &dtos.RemiseAmountDTO{Prix: 80, Pourcentage: 12.5, MontantRemise: 10}, result)

	_, err = uc.Execute(context.Background(), dtos.RemiseCommand{Prix: "80", Pourcentage: "101"})
	assert.True(t, domainerrors.IsValidationError(err))
}

func TestApplyRemiseFixeUseCase(t *testing.T) {
	rec, pub := newRecorder()
	uc := NewApplyRemiseFixeUseCase(rec)

	result, err := uc.Execute(context.Background(), dtos.RemiseFixeCommand{Prix: "0", Montant: "0"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PrixFinal)
	assert.Equal(t, 0.0, result.Pourcentage)

	result, err = uc.Execute(context.Background(), dtos.RemiseFixeCommand{Prix: "100", Montant: "150"})
	assert.Nil(t, result)
	require.True(t, domainerrors.IsValidationError(err))
	assert.Equal(t, domaindiscount.MsgMontantExceedsPrix, err.Error())

	assert.Len(t, pub.publishedEvents, 1)
}

func TestCalculatePrixOriginalUseCase(t *testing.T) {
	rec, _ := newRecorder()
	uc := NewCalculatePrixOriginalUseCase(rec)

	result, err := uc.Execute(context.Background(), dtos.PrixOriginalCommand{PrixFinal: "90", Pourcentage: "10"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.PrixInitial)
	assert.Equal(t, 10.0, result.MontantRemise)

	_, err = uc.Execute(context.Background(), dtos.PrixOriginalCommand{PrixFinal: "90", Pourcentage: "100"})
	assert.True(t, domainerrors.IsValidationError(err))
}
