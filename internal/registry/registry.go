// Package registry implements the investment registry: admin-gated token
// configuration, bounded investment creation with sequential ids, status
// transitions, and aggregate queries.
//
// The registry holds no state of its own. Every operation receives the Env of
// the call it runs in and reads and writes exclusively through it; the host
// behind the Env serializes calls and makes each one all-or-nothing.
package registry

import (
	"fmt"
	"math"

	apperrors "doblink/internal/errors"
	"doblink/internal/models"
)

// Event topics.
const (
	TopicInitialized   = "INIT"
	TopicTokenUpdated  = "TOKENUPD"
	TopicInvested      = "INVESTED"
	TopicStatusChanged = "INVSTAT"
)

// Env is the host context of a single registry call.
type Env interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Now() int64
	Caller() models.Address
	Publish(topic string, payload any)
}

// InvestedEvent is published when an investment is created.
type InvestedEvent struct {
	ID      uint32         `json:"id"`
	Buyer   models.Address `json:"buyer"`
	TokenID string         `json:"token_id"`
	Amount  int64          `json:"amount"`
}

// StatusChangedEvent is published when an investment changes status.
type StatusChangedEvent struct {
	ID     uint32                  `json:"id"`
	Status models.InvestmentStatus `json:"status"`
}

// DefaultTokenConfig is the token installed by Init.
func DefaultTokenConfig() models.TokenConfig {
	return models.TokenConfig{
		ID:               "EVCHARGER001",
		Name:             "Electric Vehicle Charging Network",
		APYBasisPoints:   1250,            // 12.5%
		TotalValueLocked: 2_400_000_000,   // $2.4K
		MinInvestment:    10_000_000,      // $10
		MaxInvestment:    100_000_000_000, // $100K
	}
}

// Registry implements the registry operations.
type Registry struct {
	defaults models.TokenConfig
}

// Option configures a Registry.
type Option func(*Registry)

// WithDefaultToken overrides the token configuration installed by Init.
func WithDefaultToken(cfg models.TokenConfig) Option {
	return func(r *Registry) {
		r.defaults = cfg
	}
}

// New creates a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{defaults: DefaultTokenConfig()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init designates admin and installs the default token configuration.
//
// Init does not check whether the registry is already initialized: calling it
// again replaces the admin and resets the token configuration, while the id
// counter and the investment history are left untouched.
func (r *Registry) Init(env Env, admin models.Address) error {
	st := state{env}
	if err := st.setAdmin(admin); err != nil {
		return err
	}
	if err := st.setToken(r.defaults); err != nil {
		return err
	}
	env.Publish(TopicInitialized, map[string]models.Address{"admin": admin})
	return nil
}

// GetAdmin returns the registry admin.
func (r *Registry) GetAdmin(env Env) (models.Address, error) {
	admin, ok, err := state{env}.admin()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrAdminNotFound
	}
	return admin, nil
}

// requireAdmin fails unless the caller of env is the registry admin. It has
// no side effects and must run before any write of the enclosing operation.
func (r *Registry) requireAdmin(env Env) error {
	admin, err := r.GetAdmin(env)
	if err != nil {
		return err
	}
	if !admin.Equal(env.Caller()) {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

// UpdateTokenInfo replaces the token configuration wholesale. The bounds are
// not validated here; an inverted band rejects every new investment.
func (r *Registry) UpdateTokenInfo(env Env, cfg models.TokenConfig) error {
	if err := r.requireAdmin(env); err != nil {
		return err
	}
	if err := (state{env}).setToken(cfg); err != nil {
		return err
	}
	env.Publish(TopicTokenUpdated, cfg)
	return nil
}

// GetTokenInfo returns the current token configuration.
func (r *Registry) GetTokenInfo(env Env) (models.TokenConfig, error) {
	cfg, ok, err := state{env}.token()
	if err != nil {
		return models.TokenConfig{}, err
	}
	if !ok {
		return models.TokenConfig{}, apperrors.ErrConfigMissing
	}
	return cfg, nil
}

// CreateInvestment records a pending investment of amount by buyer and
// returns its id. The amount must lie within the token's band at the time of
// the call.
func (r *Registry) CreateInvestment(env Env, buyer models.Address, tokenID string, amount int64) (uint32, error) {
	st := state{env}

	cfg, err := r.GetTokenInfo(env)
	if err != nil {
		return 0, err
	}
	if !cfg.Allows(amount) {
		if amount < cfg.MinInvestment {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount,
				fmt.Sprintf("Amount %d is below the minimum investment of %d", amount, cfg.MinInvestment))
		}
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount,
			fmt.Sprintf("Amount %d exceeds the maximum investment of %d", amount, cfg.MaxInvestment))
	}

	id, err := st.nextID()
	if err != nil {
		return 0, err
	}
	if id == math.MaxUint32 {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("investment id space exhausted"))
	}
	if err := st.setNextID(id + 1); err != nil {
		return 0, err
	}

	inv := models.Investment{
		ID:        id,
		Buyer:     buyer,
		TokenID:   tokenID,
		Amount:    amount,
		Timestamp: env.Now(),
		Status:    models.InvestmentStatusPending,
	}
	if err := st.putInvestment(inv); err != nil {
		return 0, err
	}

	env.Publish(TopicInvested, InvestedEvent{ID: id, Buyer: buyer, TokenID: tokenID, Amount: amount})
	return id, nil
}

// GetInvestment returns the investment with the given id.
func (r *Registry) GetInvestment(env Env, id uint32) (models.Investment, error) {
	inv, ok, err := state{env}.investment(id)
	if err != nil {
		return models.Investment{}, err
	}
	if !ok {
		return models.Investment{}, apperrors.ErrInvestmentNotFound
	}
	return inv, nil
}

// UpdateInvestmentStatus sets the status of an investment. Any transition is
// accepted, including moving a completed or failed investment back to pending.
func (r *Registry) UpdateInvestmentStatus(env Env, id uint32, status models.InvestmentStatus) error {
	if err := r.requireAdmin(env); err != nil {
		return err
	}
	if !status.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidStatus, "Unknown investment status: "+string(status))
	}

	inv, err := r.GetInvestment(env, id)
	if err != nil {
		return err
	}
	inv.Status = status
	if err := (state{env}).putInvestment(inv); err != nil {
		return err
	}

	env.Publish(TopicStatusChanged, StatusChangedEvent{ID: id, Status: status})
	return nil
}
