package conversion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Haleralex/pricecalc/internal/application/dtos"
	"github.com/Haleralex/pricecalc/internal/application/usecases"
	"github.com/Haleralex/pricecalc/internal/domain/currency"
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

func setup(table currency.RateTable) (*ConvertUseCase, *mockEventPublisher, *tracetest.SpanRecorder) {
	pub := &mockEventPublisher{}
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	rec := usecases.NewRecorder(pub, tp.Tracer("test"), nil)
	return NewConvertUseCase(currency.NewConverter(table), rec), pub, sr
}

func TestConvertUseCase_Success(t *testing.T) {
	uc, pub, sr := setup(currency.DefaultRateTable())

	result, err := uc.Execute(context.Background(), dtos.ConvertCommand{From: "EUR", To: "USD", Amount: "50.5"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "EUR", result.From)
	assert.Equal(t, "USD", result.To)
	assert.Equal(t, 50.5, result.OriginalAmount)
	assert.Equal(t, 55.55, result.ConvertedAmount)

	require.Len(t, pub.publishedEvents, 1)
	event := pub.publishedEvents[0].(*events.CalculationPerformed)
	assert.Equal(t, events.OperationConvert, event.Operation)
	assert.Equal(t, "50.5", event.Input["amount"])
	assert.Equal(t, result, event.Output)

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "calculation.convert", sr.Ended()[0].Name())
}

func TestConvertUseCase_NormalizesCodes(t *testing.T) {
	uc, _, _ := setup(currency.DefaultRateTable())

	result, err := uc.Execute(context.Background(), dtos.ConvertCommand{From: "eur", To: "usd", Amount: "100"})

	require.NoError(t, err)
	assert.Equal(t, "EUR", result.From)
	assert.Equal(t, "USD", result.To)
	assert.Equal(t, 110.0, result.ConvertedAmount)
}

func TestConvertUseCase_ValidationError(t *testing.T) {
	uc, pub, _ := setup(currency.DefaultRateTable())

	result, err := uc.Execute(context.Background(), dtos.ConvertCommand{From: "XXX", To: "JPY", Amount: "0"})

	assert.Nil(t, result)
	assert.True(t, domainerrors.IsValidationError(err))
	errs, ok := domainerrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"from", "to", "amount"}, errs.Fields())
	assert.Empty(t, pub.publishedEvents)
}

func TestConvertUseCase_RateUnavailable(t *testing.T) {
	table := currency.MustNewRateTable(map[currency.Pair]float64{{From: "EUR", To: "USD"}: 1.1})
	uc, pub, _ := setup(table)

	result, err := uc.Execute(context.Background(), dtos.ConvertCommand{From: "GBP", To: "EUR", Amount: "10"})

	assert.Nil(t, result)
	assert.True(t, domainerrors.IsRateUnavailable(err))
	assert.Empty(t, pub.publishedEvents)
}

func TestGetRatesUseCase(t *testing.T) {
	uc := NewGetRatesUseCase(currency.DefaultRateTable())

	result := uc.Execute(context.Background())

	require.NotNil(t, result)
	assert.Len(t, result.Rates, 6)
	assert.Equal(t, 0.8, result.Rates["USD_GBP"])
}
