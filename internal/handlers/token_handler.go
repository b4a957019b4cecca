package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "doblink/internal/errors"
	"doblink/internal/models"
	"doblink/internal/services"
)

// TokenHandler handles token configuration and admin requests.
type TokenHandler struct {
	registryService services.RegistryServicer
	auditService    services.AuditServicer
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(registryService services.RegistryServicer, auditService services.AuditServicer) *TokenHandler {
	return &TokenHandler{registryService: registryService, auditService: auditService}
}

// UpdateTokenRequest represents the request payload for replacing the token
// configuration. Every field is required; numeric fields may be zero.
type UpdateTokenRequest struct {
	ID               string `json:"id" binding:"required,token_id"`
	Name             string `json:"name" binding:"required,min=1,max=100"`
	APYBasisPoints   *int64 `json:"apy_basis_points" binding:"required"`
	TotalValueLocked *int64 `json:"total_value_locked" binding:"required"`
	MinInvestment    *int64 `json:"min_investment" binding:"required"`
	MaxInvestment    *int64 `json:"max_investment" binding:"required"`
}

func (r UpdateTokenRequest) toConfig() models.TokenConfig {
	return models.TokenConfig{
		ID:               r.ID,
		Name:             r.Name,
		APYBasisPoints:   *r.APYBasisPoints,
		TotalValueLocked: *r.TotalValueLocked,
		MinInvestment:    *r.MinInvestment,
		MaxInvestment:    *r.MaxInvestment,
	}
}

// GetTokenInfo handles retrieving the token configuration.
// @Summary     Get token info
// @Description Get the configuration of the investable token
// @Tags        token
// @Produce     json
// @Success     200 {object} map[string]models.TokenConfig "Token configuration"
// @Failure     409 {object} ErrorResponse "Registry not initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /token [get]
func (h *TokenHandler) GetTokenInfo(c *gin.Context) {
	cfg, err := h.registryService.GetTokenInfo(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": cfg})
}

// UpdateTokenInfo handles replacing the token configuration.
// @Summary     Update token info
// @Description Replace the token configuration wholesale (admin only)
// @Tags        token
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateTokenRequest true "New token configuration"
// @Success     200 {object} map[string]models.TokenConfig "Token updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Caller is not the admin"
// @Failure     404 {object} ErrorResponse "Registry not initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /token [put]
func (h *TokenHandler) UpdateTokenInfo(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	cfg, err := h.registryService.UpdateTokenInfo(c.Request.Context(), caller, req.toConfig())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller, "UPDATE_TOKEN", "token", cfg.ID, c.ClientIP(),
		map[string]any{
			"name":             cfg.Name,
			"apy_basis_points": cfg.APYBasisPoints,
			"min_investment":   cfg.MinInvestment,
			"max_investment":   cfg.MaxInvestment,
		})

	c.JSON(http.StatusOK, gin.H{"token": cfg})
}

// GetAdmin handles retrieving the registry admin.
// @Summary     Get admin
// @Description Get the address of the registry admin
// @Tags        token
// @Produce     json
// @Success     200 {object} map[string]string "Admin address"
// @Failure     404 {object} ErrorResponse "Registry not initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin [get]
func (h *TokenHandler) GetAdmin(c *gin.Context) {
	admin, err := h.registryService.GetAdmin(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if admin.IsZero() {
		respondWithError(c, apperrors.ErrAdminNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
