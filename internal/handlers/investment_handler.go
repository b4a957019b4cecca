package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "doblink/internal/errors"
	"doblink/internal/models"
	"doblink/internal/services"
	"doblink/internal/validator"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	registryService services.RegistryServicer
	auditService    services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(registryService services.RegistryServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{registryService: registryService, auditService: auditService}
}

// CreateInvestmentRequest represents the request payload for recording an
// investment. Buyer defaults to the authenticated caller.
type CreateInvestmentRequest struct {
	Buyer   models.Address `json:"buyer" binding:"omitempty,address"`
	TokenID string         `json:"token_id" binding:"required,token_id"`
	Amount  *int64         `json:"amount" binding:"required"`
}

// UpdateStatusRequest represents the request payload for an investment status change.
type UpdateStatusRequest struct {
	Status models.InvestmentStatus `json:"status" binding:"required,investment_status"`
}

// TokenTotalResponse is the sum of completed investments in one token.
type TokenTotalResponse struct {
	TokenID string `json:"token_id"`
	Total   int64  `json:"total"`
}

// CreateInvestment handles recording a new investment.
// @Summary     Create investment
// @Description Record a pending investment; the amount must lie within the token's bounds
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} map[string]models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input or amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Registry not initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	buyer := req.Buyer
	if buyer.IsZero() {
		buyer = caller
	}

	investment, err := h.registryService.CreateInvestment(c.Request.Context(), caller, buyer, req.TokenID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller, "CREATE_INVESTMENT", "investment", formatID(investment.ID), c.ClientIP(),
		map[string]any{"buyer": buyer, "token_id": req.TokenID, "amount": *req.Amount})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetAllInvestments handles listing every investment.
// @Summary     List investments
// @Description List every investment in creation order
// @Tags        investments
// @Produce     json
// @Success     200 {object} map[string][]models.Investment "Investments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetAllInvestments(c *gin.Context) {
	investments, err := h.registryService.GetAllInvestments(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetInvestment handles retrieving a single investment.
// @Summary     Get investment
// @Description Get an investment by id
// @Tags        investments
// @Produce     json
// @Param       id path int true "Investment ID"
// @Success     200 {object} map[string]models.Investment "Investment"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, err := parseInvestmentID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.registryService.GetInvestment(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// UpdateInvestmentStatus handles an investment status change.
// @Summary     Update investment status
// @Description Set the status of an investment (admin only)
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Investment ID"
// @Param       request body UpdateStatusRequest true "New status"
// @Success     200 {object} map[string]models.Investment "Investment updated"
// @Failure     400 {object} ErrorResponse "Invalid id or status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Caller is not the admin"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id}/status [put]
func (h *InvestmentHandler) UpdateInvestmentStatus(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseInvestmentID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	investment, err := h.registryService.UpdateInvestmentStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller, "UPDATE_INVESTMENT_STATUS", "investment", formatID(id), c.ClientIP(),
		map[string]any{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// GetBuyerInvestments handles listing the investments of one buyer.
// @Summary     Get buyer investments
// @Description List the investments made by an address in creation order
// @Tags        investments
// @Produce     json
// @Param       address path string true "Buyer address"
// @Success     200 {object} map[string][]models.Investment "Investments"
// @Failure     400 {object} ErrorResponse "Invalid address"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /buyers/{address}/investments [get]
func (h *InvestmentHandler) GetBuyerInvestments(c *gin.Context) {
	address := c.Param("address")
	if !models.IsValidAddress(address) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid address"))
		return
	}

	investments, err := h.registryService.GetBuyerInvestments(c.Request.Context(), models.Address(address))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetTokenTotalInvestments handles summing completed investments in a token.
// @Summary     Get token total
// @Description Sum the amounts of completed investments in a token
// @Tags        investments
// @Produce     json
// @Param       token_id path string true "Token ID"
// @Success     200 {object} TokenTotalResponse "Completed total"
// @Failure     400 {object} ErrorResponse "Invalid token id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tokens/{token_id}/total [get]
func (h *InvestmentHandler) GetTokenTotalInvestments(c *gin.Context) {
	tokenID := c.Param("token_id")
	if !validator.ValidTokenID(tokenID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid token id"))
		return
	}

	total, err := h.registryService.GetTokenTotalInvestments(c.Request.Context(), tokenID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenTotalResponse{TokenID: tokenID, Total: total})
}

// GetStats handles retrieving aggregate investment statistics.
// @Summary     Get stats
// @Description Count all investments, their total amount, and how many are completed
// @Tags        investments
// @Produce     json
// @Success     200 {object} map[string]models.Stats "Statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [get]
func (h *InvestmentHandler) GetStats(c *gin.Context) {
	stats, err := h.registryService.GetStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func formatID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
