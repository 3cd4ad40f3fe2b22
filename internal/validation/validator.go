package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const passwordTag = "password"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator.
//
// Field errors are named after the json tag, so clients see "firstName"
// rather than "FirstName".
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		// Registration only fails for an empty tag or a nil func.
		_ = validate.RegisterValidation(passwordTag, validatePassword)
	})

	return validate
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return Validator().Struct(v)
}

// validatePassword requires a letter, a digit and a symbol.
func validatePassword(fl validator.FieldLevel) bool {
	var letter, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return letter && digit && symbol
}
