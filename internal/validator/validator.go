// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"doblink/internal/models"
)

var tokenIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("address", validateAddress)
		_ = v.RegisterValidation("investment_status", validateInvestmentStatus)
		_ = v.RegisterValidation("token_id", validateTokenID)
	}
}

// ValidTokenID reports whether s is an acceptable token identifier.
func ValidTokenID(s string) bool {
	return tokenIDRegex.MatchString(s)
}

func validateAddress(fl validator.FieldLevel) bool {
	return models.IsValidAddress(fl.Field().String())
}

func validateInvestmentStatus(fl validator.FieldLevel) bool {
	return models.InvestmentStatus(fl.Field().String()).IsValid()
}

func validateTokenID(fl validator.FieldLevel) bool {
	return ValidTokenID(fl.Field().String())
}
