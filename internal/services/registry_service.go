package services

import (
	"context"
	"time"

	apperrors "doblink/internal/errors"
	"doblink/internal/ledger"
	"doblink/internal/logger"
	"doblink/internal/metrics"
	"doblink/internal/models"
	"doblink/internal/registry"
)

// registryService runs registry operations on a ledger host.
type registryService struct {
	host     *ledger.Host
	registry *registry.Registry
	metrics  *metrics.Metrics
}

// NewRegistryService creates a new RegistryServicer. m may be nil.
func NewRegistryService(host *ledger.Host, reg *registry.Registry, m *metrics.Metrics) RegistryServicer {
	return &registryService{host: host, registry: reg, metrics: m}
}

// invoke runs op as caller and records its outcome.
func (s *registryService) invoke(ctx context.Context, name string, caller models.Address, op func(env *ledger.Env) error) error {
	start := time.Now()
	err := s.host.Invoke(ctx, caller, op)
	if err != nil && apperrors.Code(err) == "" {
		err = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.ObserveOperation(name, apperrors.Code(err), time.Since(start))
	return err
}

// Init designates admin and installs the default token configuration.
func (s *registryService) Init(ctx context.Context, caller, admin models.Address) error {
	err := s.invoke(ctx, "init", caller, func(env *ledger.Env) error {
		return s.registry.Init(env, admin)
	})
	if err != nil {
		return err
	}

	logger.Get().Infow("registry initialized", "admin", admin.String())
	return nil
}

// GetAdmin returns the registry admin.
func (s *registryService) GetAdmin(ctx context.Context) (models.Address, error) {
	var admin models.Address
	err := s.invoke(ctx, "get_admin", "", func(env *ledger.Env) error {
		var err error
		admin, err = s.registry.GetAdmin(env)
		return err
	})
	return admin, err
}

// GetTokenInfo returns the current token configuration.
func (s *registryService) GetTokenInfo(ctx context.Context) (*models.TokenConfig, error) {
	var cfg models.TokenConfig
	err := s.invoke(ctx, "get_token_info", "", func(env *ledger.Env) error {
		var err error
		cfg, err = s.registry.GetTokenInfo(env)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateTokenInfo replaces the token configuration and returns it.
func (s *registryService) UpdateTokenInfo(ctx context.Context, caller models.Address, cfg models.TokenConfig) (*models.TokenConfig, error) {
	err := s.invoke(ctx, "update_token_info", caller, func(env *ledger.Env) error {
		return s.registry.UpdateTokenInfo(env, cfg)
	})
	if err != nil {
		return nil, err
	}

	if cfg.MinInvestment > cfg.MaxInvestment {
		logger.Get().Warnw("token bounds are inverted; new investments will be rejected",
			"token_id", cfg.ID,
			"min_investment", cfg.MinInvestment,
			"max_investment", cfg.MaxInvestment,
		)
	}
	return &cfg, nil
}

// CreateInvestment records a pending investment and returns it.
func (s *registryService) CreateInvestment(ctx context.Context, caller, buyer models.Address, tokenID string, amount int64) (*models.Investment, error) {
	var inv models.Investment
	err := s.invoke(ctx, "create_investment", caller, func(env *ledger.Env) error {
		id, err := s.registry.CreateInvestment(env, buyer, tokenID, amount)
		if err != nil {
			return err
		}
		inv, err = s.registry.GetInvestment(env, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementInvestment(inv.Amount)
	return &inv, nil
}

// GetInvestment returns one investment by id.
func (s *registryService) GetInvestment(ctx context.Context, id uint32) (*models.Investment, error) {
	var inv models.Investment
	err := s.invoke(ctx, "get_investment", "", func(env *ledger.Env) error {
		var err error
		inv, err = s.registry.GetInvestment(env, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetBuyerInvestments returns the investments of buyer in creation order.
func (s *registryService) GetBuyerInvestments(ctx context.Context, buyer models.Address) ([]models.Investment, error) {
	var out []models.Investment
	err := s.invoke(ctx, "get_buyer_investments", "", func(env *ledger.Env) error {
		var err error
		out, err = s.registry.GetBuyerInvestments(env, buyer)
		return err
	})
	return out, err
}

// GetAllInvestments returns every investment in creation order.
func (s *registryService) GetAllInvestments(ctx context.Context) ([]models.Investment, error) {
	var out []models.Investment
	err := s.invoke(ctx, "get_all_investments", "", func(env *ledger.Env) error {
		var err error
		out, err = s.registry.GetAllInvestments(env)
		return err
	})
	return out, err
}

// UpdateInvestmentStatus changes the status of an investment and returns the
// updated record.
func (s *registryService) UpdateInvestmentStatus(ctx context.Context, caller models.Address, id uint32, status models.InvestmentStatus) (*models.Investment, error) {
	var inv models.Investment
	err := s.invoke(ctx, "update_investment_status", caller, func(env *ledger.Env) error {
		if err := s.registry.UpdateInvestmentStatus(env, id, status); err != nil {
			return err
		}
		var err error
		inv, err = s.registry.GetInvestment(env, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementStatusChange(string(status))
	return &inv, nil
}

// GetTokenTotalInvestments sums completed investments in tokenID.
func (s *registryService) GetTokenTotalInvestments(ctx context.Context, tokenID string) (int64, error) {
	var total int64
	err := s.invoke(ctx, "get_token_total_investments", "", func(env *ledger.Env) error {
		var err error
		total, err = s.registry.GetTokenTotalInvestments(env, tokenID)
		return err
	})
	return total, err
}

// GetStats returns aggregate statistics over all investments.
func (s *registryService) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	err := s.invoke(ctx, "get_stats", "", func(env *ledger.Env) error {
		var err error
		stats, err = s.registry.GetStats(env)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
