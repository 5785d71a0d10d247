package currency

import (
	"strings"

	"github.com/Haleralex/pricecalc/internal/domain/validation"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// Client-facing validation messages.
var (
	MsgInvalidFrom   = "Devise source invalide. Devises supportées: " + strings.Join(valueobjects.SupportedCurrencyCodes(), ", ")
	MsgInvalidTo     = "Devise cible invalide. Devises supportées: " + strings.Join(valueobjects.SupportedCurrencyCodes(), ", ")
	MsgInvalidAmount = "Le montant doit être un nombre positif"
)

// Params are the validated inputs of a conversion.
type Params struct {
	From   valueobjects.Currency
	To     valueobjects.Currency
	Amount float64
}

// Conversion is the result of converting one amount.
type Conversion struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	OriginalAmount  float64 `json:"originalAmount"`
	ConvertedAmount float64 `json:"convertedAmount"`
	Rate            float64 `json:"rate"`
}

// ValidateParams checks that from and to are supported currencies (any
// casing) and that amount is a finite number strictly greater than zero.
func ValidateParams(from, to, amount any) validation.Result[Params] {
	return validation.Validate(conversionRules(from, to, amount))
}

func conversionRules(from, to, amount any) func(v *validation.Validator) Params {
	return func(v *validation.Validator) Params {
		return Params{
			From:   v.Currency("from", from, MsgInvalidFrom),
			To:     v.Currency("to", to, MsgInvalidTo),
			Amount: v.Number("amount", amount, validation.Positive, MsgInvalidAmount),
		}
	}
}

// Converter converts amounts with a read-only RateTable.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	rates RateTable
}

// NewConverter creates a converter over rates.
func NewConverter(rates RateTable) *Converter {
	return &Converter{rates: rates}
}

// Rates returns the table the converter reads from.
func (c *Converter) Rates() RateTable {
	return c.rates
}

// Convert validates the inputs, looks up the rate and returns the converted
// amount rounded to cents. Validation failures are returned together as
// domainerrors.ValidationErrors; a pair missing from the table is a
// *domainerrors.RateUnavailableError.
func (c *Converter) Convert(from, to, amount any) (Conversion, error) {
	return validation.Run(conversionRules(from, to, amount), func(p Params) (Conversion, error) {
		rate, err := c.rates.Rate(p.From.Code(), p.To.Code())
		if err != nil {
			return Conversion{}, err
		}
		converted := p.Amount * rate
		if err := validation.Finite("amount", converted); err != nil {
			return Conversion{}, err
		}
		return Conversion{
			From:            p.From.Code(),
			To:              p.To.Code(),
			OriginalAmount:  p.Amount,
			ConvertedAmount: valueobjects.RoundCents(converted),
			Rate:            rate,
		}, nil
	})
}
