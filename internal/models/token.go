package models

// TokenConfig describes the single investable asset of a registry instance.
// Amounts are denominated in micro-units (1 USD = 1_000_000).
type TokenConfig struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	APYBasisPoints   int64  `json:"apy_basis_points"`
	TotalValueLocked int64  `json:"total_value_locked"`
	MinInvestment    int64  `json:"min_investment"`
	MaxInvestment    int64  `json:"max_investment"`
}

// Allows reports whether amount falls inside the configured investment band.
func (c TokenConfig) Allows(amount int64) bool {
	return amount >= c.MinInvestment && amount <= c.MaxInvestment
}
