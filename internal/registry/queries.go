package registry

import (
	"fmt"
	"math"

	apperrors "doblink/internal/errors"
	"doblink/internal/models"
)

// GetAllInvestments returns every investment in creation order.
func (r *Registry) GetAllInvestments(env Env) ([]models.Investment, error) {
	all := []models.Investment{}
	err := state{env}.each(func(inv models.Investment) error {
		all = append(all, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// GetBuyerInvestments returns the investments made by buyer in creation order.
func (r *Registry) GetBuyerInvestments(env Env, buyer models.Address) ([]models.Investment, error) {
	matched := []models.Investment{}
	err := state{env}.each(func(inv models.Investment) error {
		if inv.Buyer.Equal(buyer) {
			matched = append(matched, inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// GetTokenTotalInvestments sums the amounts of completed investments in tokenID.
func (r *Registry) GetTokenTotalInvestments(env Env, tokenID string) (int64, error) {
	var total int64
	err := state{env}.each(func(inv models.Investment) error {
		if inv.TokenID != tokenID || inv.Status != models.InvestmentStatusCompleted {
			return nil
		}
		var err error
		total, err = addAmount(total, inv.Amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetStats counts all investments, their total amount and how many are
// completed, in one pass.
func (r *Registry) GetStats(env Env) (models.Stats, error) {
	var stats models.Stats
	err := state{env}.each(func(inv models.Investment) error {
		var err error
		stats.TotalAmount, err = addAmount(stats.TotalAmount, inv.Amount)
		if err != nil {
			return err
		}
		stats.TotalInvestments++
		if inv.Status == models.InvestmentStatusCompleted {
			stats.CompletedInvestments++
		}
		return nil
	})
	if err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

// addAmount returns sum+amount, failing instead of wrapping around int64.
func addAmount(sum, amount int64) (int64, error) {
	if (amount > 0 && sum > math.MaxInt64-amount) || (amount < 0 && sum < math.MinInt64-amount) {
		return 0, apperrors.Wrap(apperrors.ErrAmountOverflow,
			fmt.Errorf("adding %d to %d overflows int64", amount, sum))
	}
	return sum + amount, nil
}
