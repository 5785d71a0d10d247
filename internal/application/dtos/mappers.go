// Package dtos - Mappers from domain results to DTOs.
//
// Pattern: Mapper/Converter
// Keeps the domain result types out of the HTTP contract.
package dtos

import (
	"github.com/Haleralex/pricecalc/internal/domain/currency"
	"github.com/Haleralex/pricecalc/internal/domain/discount"
	"github.com/Haleralex/pricecalc/internal/domain/vat"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// ============================================
// Conversion Mappers
// ============================================

// ToConversionDTO converts a domain conversion to a DTO.
func ToConversionDTO(c currency.Conversion) ConversionDTO {
	return ConversionDTO{
		From:            c.From,
		To:              c.To,
		OriginalAmount:  c.OriginalAmount,
		ConvertedAmount: c.ConvertedAmount,
		Rate:            c.Rate,
	}
}

// ToRatesDTO lists a rate table.
func ToRatesDTO(table currency.RateTable) RatesDTO {
	pairs := table.Pairs()
	list := make([]RateDTO, len(pairs))
	for i, p := range pairs {
		rate, _ := table.Rate(p.From, p.To)
		list[i] = RateDTO{From: p.From, To: p.To, Rate: rate}
	}

	return RatesDTO{
		Currencies: valueobjects.SupportedCurrencyCodes(),
		Rates:      table.Rates(),
		Pairs:      list,
	}
}

// ============================================
// VAT Mappers
// ============================================

// ToTTCDTO converts a TTC result.
func ToTTCDTO(r vat.TTCResult) TTCDTO {
	return TTCDTO{
		HT:         r.HT,
		Taux:       r.Taux,
		MontantTva: r.MontantTva,
		TTC:        r.TTC,
	}
}

// Response drops the VAT amount.
func (d TTCDTO) Response() TTCResponse {
	return TTCResponse{HT: d.HT, Taux: d.Taux, TTC: d.TTC}
}

// ToHTDTO converts an HT result.
func ToHTDTO(r vat.HTResult) HTDTO {
	return HTDTO{
		TTC:        r.TTC,
		Taux:       r.Taux,
		MontantTva: r.MontantTva,
		HT:         r.HT,
	}
}

// ToStandardRatesDTO wraps the reference rates.
func ToStandardRatesDTO(rates map[string]float64) StandardRatesDTO {
	return StandardRatesDTO{Taux: rates}
}

// ============================================
// Discount Mappers
// ============================================

// ToRemiseDTO converts a percentage discount result.
func ToRemiseDTO(r discount.Result) RemiseDTO {
	return RemiseDTO{
		PrixInitial:   r.PrixInitial,
		Pourcentage:   r.Pourcentage,
		MontantRemise: r.MontantRemise,
		PrixFinal:     r.PrixFinal,
	}
}

// Response drops the discount amount.
func (d RemiseDTO) Response() RemiseResponse {
	return RemiseResponse{PrixInitial: d.PrixInitial, Pourcentage: d.Pourcentage, PrixFinal: d.PrixFinal}
}

// ToRemiseFixeDTO converts a fixed discount result.
func ToRemiseFixeDTO(r discount.FixedResult) RemiseFixeDTO {
	return RemiseFixeDTO{
		PrixInitial:   r.PrixInitial,
		MontantRemise: r.MontantRemise,
		Pourcentage:   r.Pourcentage,
		PrixFinal:     r.PrixFinal,
	}
}

// ToPrixOriginalDTO converts an original price result.
func ToPrixOriginalDTO(r discount.OriginalResult) PrixOriginalDTO {
	return PrixOriginalDTO{
		PrixFinal:     r.PrixFinal,
		Pourcentage:   r.Pourcentage,
		PrixInitial:   r.PrixInitial,
		MontantRemise: r.MontantRemise,
	}
}
