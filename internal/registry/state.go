package registry

import (
	"encoding/json"
	"fmt"
	"strconv"

	apperrors "doblink/internal/errors"
	"doblink/internal/models"
)

// Storage keys. Each investment lives under its own key so that a scan of
// ids 1..counter-1 yields creation order.
const (
	keyAdmin            = "ADMIN"
	keyToken            = "TOKEN"
	keyCounter          = "CNT"
	investmentKeyPrefix = "INV:"
)

// firstInvestmentID is the counter value of a registry with no investments.
const firstInvestmentID uint32 = 1

func investmentKey(id uint32) string {
	return investmentKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

// state gives typed access to each piece of registry state held in the Env.
type state struct {
	env Env
}

func (s state) load(key string, into any) (bool, error) {
	raw, ok, err := s.env.Get(key)
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("decode %s: %w", key, err))
	}
	return true, nil
}

func (s state) store(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("encode %s: %w", key, err))
	}
	if err := s.env.Set(key, raw); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s state) admin() (models.Address, bool, error) {
	var admin models.Address
	ok, err := s.load(keyAdmin, &admin)
	return admin, ok, err
}

func (s state) setAdmin(admin models.Address) error {
	return s.store(keyAdmin, admin)
}

func (s state) token() (models.TokenConfig, bool, error) {
	var cfg models.TokenConfig
	ok, err := s.load(keyToken, &cfg)
	return cfg, ok, err
}

func (s state) setToken(cfg models.TokenConfig) error {
	return s.store(keyToken, cfg)
}

// nextID returns the id the next investment will receive.
func (s state) nextID() (uint32, error) {
	var next uint32
	ok, err := s.load(keyCounter, &next)
	if err != nil {
		return 0, err
	}
	if !ok {
		return firstInvestmentID, nil
	}
	return next, nil
}

func (s state) setNextID(next uint32) error {
	return s.store(keyCounter, next)
}

func (s state) investment(id uint32) (models.Investment, bool, error) {
	var inv models.Investment
	ok, err := s.load(investmentKey(id), &inv)
	return inv, ok, err
}

func (s state) putInvestment(inv models.Investment) error {
	return s.store(investmentKey(inv.ID), inv)
}

// each visits every investment in creation order.
func (s state) each(visit func(inv models.Investment) error) error {
	next, err := s.nextID()
	if err != nil {
		return err
	}
	for id := firstInvestmentID; id < next; id++ {
		inv, ok, err := s.investment(id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("investment %d missing below counter %d", id, next))
		}
		if err := visit(inv); err != nil {
			return err
		}
	}
	return nil
}
