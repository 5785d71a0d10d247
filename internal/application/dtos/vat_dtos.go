package dtos

// ============================================
// Commands
// ============================================

// TTCCommand - add VAT to a tax-exclusive amount (also used for the VAT amount alone).
type TTCCommand struct {
	HT   string `json:"ht"`
	Taux string `json:"taux"`
}

// HTCommand - remove VAT from a tax-inclusive amount.
type HTCommand struct {
	TTC  string `json:"ttc"`
	Taux string `json:"taux"`
}

// ============================================
// Results
// ============================================

// TTCDTO - full result of a TTC computation.
type TTCDTO struct {
	HT         float64 `json:"ht"`
	Taux       float64 `json:"taux"`
	MontantTva float64 `json:"montantTva"`
	TTC        float64 `json:"ttc"`
}

// TTCResponse - the public /tva body.
type TTCResponse struct {
	HT   float64 `json:"ht"`
	Taux float64 `json:"taux"`
	TTC  float64 `json:"ttc"`
}

// HTDTO - result of an HT computation.
type HTDTO struct {
	TTC        float64 `json:"ttc"`
	Taux       float64 `json:"taux"`
	MontantTva float64 `json:"montantTva"`
	HT         float64 `json:"ht"`
}

// TvaAmountDTO - VAT owed on an amount.
type TvaAmountDTO struct {
	HT         float64 `json:"ht"`
	Taux       float64 `json:"taux"`
	MontantTva float64 `json:"montantTva"`
}

// StandardRatesDTO - reference French VAT rates.
type StandardRatesDTO struct {
	Taux map[string]float64 `json:"taux"`
}
