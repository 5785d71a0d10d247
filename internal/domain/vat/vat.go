// Package vat computes French VAT (TVA) amounts between tax-exclusive (HT)
// and tax-inclusive (TTC) prices.
package vat

import (
	"github.com/Haleralex/pricecalc/internal/domain/validation"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// Client-facing validation messages.
const (
	MsgInvalidHT   = "Le montant HT doit être un nombre positif ou nul"
	MsgInvalidTTC  = "Le montant TTC doit être un nombre positif ou nul"
	MsgInvalidTaux = "Le taux de TVA doit être un nombre entre 0 et 100"
)

// Standard French VAT rates, in percent.
const (
	RateNormal        = 20.0
	RateIntermediaire = 10.0
	RateReduit        = 5.5
	RateParticulier   = 2.1
)

// Params are validated HT-based inputs.
type Params struct {
	HT   float64
	Taux float64
}

// InverseParams are validated TTC-based inputs.
type InverseParams struct {
	TTC  float64
	Taux float64
}

// TTCResult is the outcome of CalculateTTC.
type TTCResult struct {
	HT         float64 `json:"ht"`
	Taux       float64 `json:"taux"`
	MontantTva float64 `json:"montantTva"`
	TTC        float64 `json:"ttc"`
}

// HTResult is the outcome of CalculateHT.
type HTResult struct {
	TTC        float64 `json:"ttc"`
	Taux       float64 `json:"taux"`
	MontantTva float64 `json:"montantTva"`
	HT         float64 `json:"ht"`
}

func htRules(ht, taux any) func(v *validation.Validator) Params {
	return func(v *validation.Validator) Params {
		return Params{
			HT:   v.Number("ht", ht, validation.NonNegative, MsgInvalidHT),
			Taux: v.Number("taux", taux, validation.Percentage, MsgInvalidTaux),
		}
	}
}

func ttcRules(ttc, taux any) func(v *validation.Validator) InverseParams {
	return func(v *validation.Validator) InverseParams {
		return InverseParams{
			TTC:  v.Number("ttc", ttc, validation.NonNegative, MsgInvalidTTC),
			Taux: v.Number("taux", taux, validation.Percentage, MsgInvalidTaux),
		}
	}
}

// ValidateParams checks ht >= 0 and 0 <= taux <= 100.
func ValidateParams(ht, taux any) validation.Result[Params] {
	return validation.Validate(htRules(ht, taux))
}

// CalculateTTC adds VAT to a tax-exclusive amount.
// montantTva and ttc are rounded independently from the unrounded values.
func CalculateTTC(ht, taux any) (TTCResult, error) {
	return validation.Run(htRules(ht, taux), func(p Params) (TTCResult, error) {
		montant := valueobjects.PercentageOf(p.HT, p.Taux)
		ttc := p.HT + montant
		if err := validation.Finite("ht", montant, ttc); err != nil {
			return TTCResult{}, err
		}
		return TTCResult{
			HT:         p.HT,
			Taux:       p.Taux,
			MontantTva: valueobjects.RoundCents(montant),
			TTC:        valueobjects.RoundCents(ttc),
		}, nil
	})
}

// CalculateHT removes VAT from a tax-inclusive amount.
// montantTva is derived from the unrounded ht.
func CalculateHT(ttc, taux any) (HTResult, error) {
	return validation.Run(ttcRules(ttc, taux), func(p InverseParams) (HTResult, error) {
		ht := p.TTC / (1 + p.Taux/100)
		if err := validation.Finite("ttc", ht, p.TTC-ht); err != nil {
			return HTResult{}, err
		}
		return HTResult{
			TTC:        p.TTC,
			Taux:       p.Taux,
			MontantTva: valueobjects.RoundCents(p.TTC - ht),
			HT:         valueobjects.RoundCents(ht),
		}, nil
	})
}

// CalculateTvaAmount returns only the rounded VAT owed on ht.
func CalculateTvaAmount(ht, taux any) (float64, error) {
	return validation.Run(htRules(ht, taux), func(p Params) (float64, error) {
		montant := valueobjects.PercentageOf(p.HT, p.Taux)
		if err := validation.Finite("ht", montant); err != nil {
			return 0, err
		}
		return valueobjects.RoundCents(montant), nil
	})
}

// StandardRates returns the reference French rates keyed by name.
// The map is a fresh copy on every call.
func StandardRates() map[string]float64 {
	return map[string]float64{
		"normal":        RateNormal,
		"intermediaire": RateIntermediaire,
		"reduit":        RateReduit,
		"particulier":   RateParticulier,
	}
}
