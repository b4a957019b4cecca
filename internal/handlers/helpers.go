package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "doblink/internal/errors"
	"doblink/internal/middleware"
	"doblink/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getCaller extracts the authenticated caller address from the Gin context.
// Returns ErrUnauthorized if not present.
func getCaller(c *gin.Context) (models.Address, error) {
	value, exists := c.Get(middleware.CallerKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	caller, ok := value.(models.Address)
	if !ok || caller.IsZero() {
		return "", apperrors.ErrUnauthorized
	}
	return caller, nil
}

// parseInvestmentID parses the :id path parameter as an investment id.
func parseInvestmentID(c *gin.Context) (uint32, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid investment id")
	}
	return uint32(id), nil
}

// bindError converts a request binding failure into an AppError. A rejected
// status keeps its own code; everything else is INVALID_INPUT.
func bindError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "investment_status" {
				return apperrors.WithMessage(apperrors.ErrInvalidStatus, fmt.Sprintf("Unknown investment status: %v", fe.Value()))
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RenderError(c, err)
}
