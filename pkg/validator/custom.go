package validator

import (
	"github.com/go-playground/validator/v10"

	"ignis/pkg/format"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("phone", validatePhone)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// a phone is valid once its digit-only form reaches 10 digits (DDD + number)
func validatePhone(fl validator.FieldLevel) bool {
	return len(format.DigitsOnly(fl.Field().String())) >= 10
}
