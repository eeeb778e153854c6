package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Errors unwraps the per-field validation errors, if any.
func Errors(err error) (validator.ValidationErrors, bool) {
	ve, ok := err.(validator.ValidationErrors)
	return ve, ok
}
