// Package dtos - commands and results exchanged between the HTTP layer and
// the calculation use cases.
package dtos

// ============================================
// Commands
// ============================================

// ConvertCommand - request to convert an amount between two currencies.
// Values are passed through as received; the domain validates them.
type ConvertCommand struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// ============================================
// Results
// ============================================

// ConversionDTO - result of a conversion. The rate is kept for logging and
// events but not serialized.
type ConversionDTO struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	OriginalAmount  float64 `json:"originalAmount"`
	ConvertedAmount float64 `json:"convertedAmount"`
	Rate            float64 `json:"-"`
}

// RateDTO - one directed pair of the rate table.
type RateDTO struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// RatesDTO - the full exchange-rate table.
type RatesDTO struct {
	Currencies []string           `json:"currencies"`
	Rates      map[string]float64 `json:"rates"`
	Pairs      []RateDTO          `json:"pairs"`
}
