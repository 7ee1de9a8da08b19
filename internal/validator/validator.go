// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ledgerbook/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("account_type", validateAccountType)
	}
}

// validateAccountType accepts exactly the five closed account kinds.
func validateAccountType(fl validator.FieldLevel) bool {
	return models.AccountType(fl.Field().String()).IsValid()
}
