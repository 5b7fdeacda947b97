package session

import (
	"strings"
	"unicode"

	"curalink-client/src/models"
)

const passwordSpecials = "@$!%*?&"

// checkPasswordPolicy enforces the registration password rules: at
// least 8 characters, containing a letter, a digit and one of the
// allowed specials, with no other characters permitted.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("password", "password must be at least 8 characters")
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r) && r < 128:
			hasLetter = true
		case unicode.IsDigit(r) && r < 128:
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return models.NewValidationError("password", "password contains characters that are not allowed")
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return models.NewValidationError("password", "password must include a letter, a number and a special character")
	}
	return nil
}
