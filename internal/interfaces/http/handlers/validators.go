package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"leadloft/internal/domain/opportunity"
)

// RegisterValidations installs custom binding validators on Gin's
// validator engine. Called once during router setup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("oppstatus", func(fl validator.FieldLevel) bool {
		return opportunity.Status(fl.Field().String()).IsValid()
	})
}
