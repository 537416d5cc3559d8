package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"

	"prospecta/cmd/internal/utils"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 64
)

var specialRegex = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)

// StrongPassword enforces the character-class mix on top of the
// min/max tags declared on the field.
func StrongPassword(fl validator.FieldLevel) bool {
	password, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	length := len(password)
	if length < PasswordMinLength || length > PasswordMaxLength {
		return false
	}

	hasSpecial := specialRegex.MatchString(password)
	var hasUpper, hasLower, hasDigit bool

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true

		case unicode.IsLower(ch):
			hasLower = true

		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// CNPJ validates the RFB check digits after stripping the display mask.
func CNPJ(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsCNPJValid(utils.NormalizeCNPJ(raw))
}
