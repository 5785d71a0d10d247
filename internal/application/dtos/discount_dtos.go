package dtos

// ============================================
// Commands
// ============================================

// RemiseCommand - percentage discount (also used for the discount amount alone).
type RemiseCommand struct {
	Prix        string `json:"prix"`
	Pourcentage string `json:"pourcentage"`
}

// RemiseFixeCommand - fixed-amount discount.
type RemiseFixeCommand struct {
	Prix    string `json:"prix"`
	Montant string `json:"montant"`
}

// PrixOriginalCommand - reconstruct the price before a percentage discount.
type PrixOriginalCommand struct {
	PrixFinal   string `json:"prixFinal"`
	Pourcentage string `json:"pourcentage"`
}

// ============================================
// Results
// ============================================

// RemiseDTO - full result of a percentage discount.
type RemiseDTO struct {
	PrixInitial   float64 `json:"prixInitial"`
	Pourcentage   float64 `json:"pourcentage"`
	MontantRemise float64 `json:"montantRemise"`
	PrixFinal     float64 `json:"prixFinal"`
}

// RemiseResponse - the public /remise body.
type RemiseResponse struct {
	PrixInitial float64 `json:"prixInitial"`
	Pourcentage float64 `json:"pourcentage"`
	PrixFinal   float64 `json:"prixFinal"`
}

// RemiseAmountDTO - discount amount on a price.
type RemiseAmountDTO struct {
	Prix          float64 `json:"prix"`
	Pourcentage   float64 `json:"pourcentage"`
	MontantRemise float64 `json:"montantRemise"`
}

// RemiseFixeDTO - result of a fixed-amount discount.
type RemiseFixeDTO struct {
	PrixInitial   float64 `json:"prixInitial"`
	MontantRemise float64 `json:"montantRemise"`
	Pourcentage   float64 `json:"pourcentage"`
	PrixFinal     float64 `json:"prixFinal"`
}

// PrixOriginalDTO - reconstructed original price.
type PrixOriginalDTO struct {
	PrixFinal     float64 `json:"prixFinal"`
	Pourcentage   float64 `json:"pourcentage"`
	PrixInitial   float64 `json:"prixInitial"`
	MontantRemise float64 `json:"montantRemise"`
}
