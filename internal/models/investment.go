package models

import (
	apperrors "doblink/internal/errors"
)

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusFailed    InvestmentStatus = "failed"
)

// ParseInvestmentStatus converts s into an InvestmentStatus, rejecting
// anything outside the closed set.
func ParseInvestmentStatus(s string) (InvestmentStatus, error) {
	status := InvestmentStatus(s)
	if !status.IsValid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidStatus, "Unknown investment status: "+s)
	}
	return status, nil
}

// IsValid reports whether the status is one of the known values.
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case InvestmentStatusPending, InvestmentStatusCompleted, InvestmentStatusFailed:
		return true
	}
	return false
}

// UnmarshalText rejects unknown statuses so that decoded records are always valid.
func (s *InvestmentStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseInvestmentStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Investment is one recorded capital contribution.
type Investment struct {
	ID        uint32           `json:"id"`
	Buyer     Address          `json:"buyer"`
	TokenID   string           `json:"token_id"`
	Amount    int64            `json:"amount"`
	Timestamp int64            `json:"timestamp"`
	Status    InvestmentStatus `json:"status"`
}

// Stats aggregates the whole investment collection from a single scan.
type Stats struct {
	TotalInvestments     int64 `json:"total_investments"`
	TotalAmount          int64 `json:"total_amount"`
	CompletedInvestments int64 `json:"completed_investments"`
}
