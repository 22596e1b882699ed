package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/sales"
)

// SetupValidator registers custom binding validations on gin's validator engine
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("sale_status", func(fl validator.FieldLevel) bool {
		return sales.SaleStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return clinic.UserRole(fl.Field().String()).IsValid()
	})
}
