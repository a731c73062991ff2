package utils

import (
	"regexp"

	"clinic-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("dateonly", validateDateOnly)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClock(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexClock).MatchString(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateOnly).MatchString(fl.Field().String())
}
