// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var resetCodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("ledger_month", validateLedgerMonth)
		_ = v.RegisterValidation("reset_code", validateResetCode)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Fixa", "Ocasional":
		return true
	}
	return false
}

func validateLedgerMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}

func validateResetCode(fl validator.FieldLevel) bool {
	return resetCodeRegex.MatchString(fl.Field().String())
}
