package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doblink/internal/models"
	"doblink/internal/services"
)

// PipelineHandler handles deployment requests authenticated by API key.
type PipelineHandler struct {
	registryService services.RegistryServicer
	auditService    services.AuditServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(registryService services.RegistryServicer, auditService services.AuditServicer) *PipelineHandler {
	return &PipelineHandler{registryService: registryService, auditService: auditService}
}

// InitRequest represents the request payload for initializing the registry.
type InitRequest struct {
	Admin models.Address `json:"admin" binding:"required,address"`
}

// Init handles registry initialization.
// @Summary     Initialize registry
// @Description Designate the admin and install the default token configuration. Calling it again replaces the admin and resets the token but keeps all investments.
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body InitRequest true "Admin address"
// @Success     200 {object} map[string]models.TokenConfig "Registry initialized"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/init [post]
func (h *PipelineHandler) Init(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.registryService.Init(ctx, req.Admin, req.Admin); err != nil {
		respondWithError(c, err)
		return
	}

	cfg, err := h.registryService.GetTokenInfo(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.Admin, "INIT_REGISTRY", "registry", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"admin": req.Admin, "token": cfg})
}
