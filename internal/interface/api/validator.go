package api

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/utils"
)

// NewValidator creates the request validator with the custom cpf rule
// registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return utils.IsValidCPF(fl.Field().String())
	})
	return v
}

// validationError converts a validator error into a Validation-class error
// with a field-level message.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("invalid request body")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fe.Field()+" is required")
		case "cpf":
			fields = append(fields, fe.Field()+" is not a valid CPF")
		default:
			fields = append(fields, fe.Field()+" is invalid")
		}
	}
	return apperr.Validation(strings.Join(fields, ", "))
}
