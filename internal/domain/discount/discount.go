// Package discount applies percentage and fixed-amount discounts (remises)
// and reconstructs an original price from a discounted one.
package discount

import (
	"github.com/Haleralex/pricecalc/internal/domain/validation"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// Client-facing validation messages.
const (
	MsgInvalidPrix            = "Le prix doit être un nombre positif ou nul"
	MsgInvalidPourcentage     = "Le pourcentage de remise doit être un nombre entre 0 et 100"
	MsgInvalidMontant         = "Le montant de remise doit être un nombre positif ou nul"
	MsgMontantExceedsPrix     = "Le montant de remise ne peut pas être supérieur au prix initial"
	MsgInvalidPrixFinal       = "Le prix final doit être un nombre positif ou nul"
	MsgInvalidOpenPourcentage = "Le pourcentage de remise doit être un nombre entre 0 et 99.99"
)

// Params are validated inputs of a percentage discount.
type Params struct {
	Prix        float64
	Pourcentage float64
}

// FixedParams are validated inputs of a fixed-amount discount.
type FixedParams struct {
	Prix    float64
	Montant float64
}

// InverseParams are validated inputs of the original price reconstruction.
type InverseParams struct {
	PrixFinal   float64
	Pourcentage float64
}

// Result is the outcome of ApplyRemise.
type Result struct {
	PrixInitial   float64 `json:"prixInitial"`
	Pourcentage   float64 `json:"pourcentage"`
	MontantRemise float64 `json:"montantRemise"`
	PrixFinal     float64 `json:"prixFinal"`
}

// FixedResult is the outcome of ApplyRemiseFixe.
type FixedResult struct {
	PrixInitial   float64 `json:"prixInitial"`
	MontantRemise float64 `json:"montantRemise"`
	Pourcentage   float64 `json:"pourcentage"`
	PrixFinal     float64 `json:"prixFinal"`
}

// OriginalResult is the outcome of CalculatePrixOriginal.
type OriginalResult struct {
	PrixFinal     float64 `json:"prixFinal"`
	Pourcentage   float64 `json:"pourcentage"`
	PrixInitial   float64 `json:"prixInitial"`
	MontantRemise float64 `json:"montantRemise"`
}

func remiseRules(prix, pourcentage any) func(v *validation.Validator) Params {
	return func(v *validation.Validator) Params {
		return Params{
			Prix:        v.Number("prix", prix, validation.NonNegative, MsgInvalidPrix),
			Pourcentage: v.Number("pourcentage", pourcentage, validation.Percentage, MsgInvalidPourcentage),
		}
	}
}

func fixedRules(prix, montant any) func(v *validation.Validator) FixedParams {
	return func(v *validation.Validator) FixedParams {
		p := FixedParams{
			Prix:    v.Number("prix", prix, validation.NonNegative, MsgInvalidPrix),
			Montant: v.Number("montant", montant, validation.NonNegative, MsgInvalidMontant),
		}
		// compared only when both values are numbers
		if parsed(prix) && parsed(montant) {
			v.Check(p.Montant <= p.Prix, "montant", MsgMontantExceedsPrix)
		}
		return p
	}
}

func inverseRules(prixFinal, pourcentage any) func(v *validation.Validator) InverseParams {
	return func(v *validation.Validator) InverseParams {
		return InverseParams{
			PrixFinal:   v.Number("prixFinal", prixFinal, validation.NonNegative, MsgInvalidPrixFinal),
			Pourcentage: v.Number("pourcentage", pourcentage, validation.OpenPercentage, MsgInvalidOpenPourcentage),
		}
	}
}

func parsed(raw any) bool {
	_, err := valueobjects.ParseNumber(raw)
	return err == nil
}

// ValidateParams checks prix >= 0 and 0 <= pourcentage <= 100.
func ValidateParams(prix, pourcentage any) validation.Result[Params] {
	return validation.Validate(remiseRules(prix, pourcentage))
}

// ApplyRemise applies a percentage discount to prix.
// montantRemise and prixFinal are rounded independently.
func ApplyRemise(prix, pourcentage any) (Result, error) {
	return validation.Run(remiseRules(prix, pourcentage), func(p Params) (Result, error) {
		montant := valueobjects.PercentageOf(p.Prix, p.Pourcentage)
		if err := validation.Finite("prix", montant, p.Prix-montant); err != nil {
			return Result{}, err
		}
		return Result{
			PrixInitial:   p.Prix,
			Pourcentage:   p.Pourcentage,
			MontantRemise: valueobjects.RoundCents(montant),
			PrixFinal:     valueobjects.RoundCents(p.Prix - montant),
		}, nil
	})
}

// CalculateRemiseAmount returns only the rounded discount amount.
func CalculateRemiseAmount(prix, pourcentage any) (float64, error) {
	return validation.Run(remiseRules(prix, pourcentage), func(p Params) (float64, error) {
		montant := valueobjects.PercentageOf(p.Prix, p.Pourcentage)
		if err := validation.Finite("prix", montant); err != nil {
			return 0, err
		}
		return valueobjects.RoundCents(montant), nil
	})
}

// ApplyRemiseFixe subtracts a fixed amount from prix. The amount may not
// exceed the price. The equivalent percentage is 0 for a zero price.
func ApplyRemiseFixe(prix, montant any) (FixedResult, error) {
	return validation.Run(fixedRules(prix, montant), func(p FixedParams) (FixedResult, error) {
		var pct float64
		if p.Prix > 0 {
			pct = p.Montant / p.Prix * 100
		}
		if err := validation.Finite("prix", pct, p.Prix-p.Montant); err != nil {
			return FixedResult{}, err
		}
		return FixedResult{
			PrixInitial:   p.Prix,
			MontantRemise: p.Montant,
			Pourcentage:   valueobjects.RoundCents(pct),
			PrixFinal:     valueobjects.RoundCents(p.Prix - p.Montant),
		}, nil
	})
}

// CalculatePrixOriginal finds the price before a percentage discount.
// pourcentage must be below 100; montantRemise comes from the unrounded
// original price.
func CalculatePrixOriginal(prixFinal, pourcentage any) (OriginalResult, error) {
	return validation.Run(inverseRules(prixFinal, pourcentage), func(p InverseParams) (OriginalResult, error) {
		initial := p.PrixFinal / (1 - p.Pourcentage/100)
		if err := validation.Finite("prixFinal", initial, initial-p.PrixFinal); err != nil {
			return OriginalResult{}, err
		}
		return OriginalResult{
			PrixFinal:     p.PrixFinal,
			Pourcentage:   p.Pourcentage,
			PrixInitial:   valueobjects.RoundCents(initial),
			MontantRemise: valueobjects.RoundCents(initial - p.PrixFinal),
		}, nil
	})
}
