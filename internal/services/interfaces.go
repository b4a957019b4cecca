package services

import (
	"context"

	"doblink/internal/models"
)

// RegistryServicer defines the contract for registry operations. Mutating
// operations take the verified caller; admin-gated ones reject any caller
// other than the registry admin.
type RegistryServicer interface {
	Init(ctx context.Context, caller, admin models.Address) error
	GetAdmin(ctx context.Context) (models.Address, error)
	GetTokenInfo(ctx context.Context) (*models.TokenConfig, error)
	UpdateTokenInfo(ctx context.Context, caller models.Address, cfg models.TokenConfig) (*models.TokenConfig, error)
	CreateInvestment(ctx context.Context, caller, buyer models.Address, tokenID string, amount int64) (*models.Investment, error)
	GetInvestment(ctx context.Context, id uint32) (*models.Investment, error)
	GetBuyerInvestments(ctx context.Context, buyer models.Address) ([]models.Investment, error)
	GetAllInvestments(ctx context.Context) ([]models.Investment, error)
	UpdateInvestmentStatus(ctx context.Context, caller models.Address, id uint32, status models.InvestmentStatus) (*models.Investment, error)
	GetTokenTotalInvestments(ctx context.Context, tokenID string) (int64, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(caller models.Address, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
