package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// currencyCode validates a 3-letter uppercase ISO-4217 style code.
func currencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// shareRole validates that a role is one the invite flow may assign.
// "admin" exists in the schema but is reserved.
func shareRole(fl validator.FieldLevel) bool {
	return domain.ShareRole(fl.Field().String()).IsAssignable()
}

// RegisterValidators wires custom validation tags into Gin's binding
// validator. Call once during startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("currencycode", currencyCode); err != nil {
		return err
	}
	return v.RegisterValidation("sharerole", shareRole)
}
