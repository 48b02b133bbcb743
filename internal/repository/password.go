package repository

import (
	"unicode"

	apperrors "catalog/internal/errors"
)

const minPasswordLength = 4

// ValidatePassword enforces the store's password policy: minimum length plus
// at least one letter and one digit. Callers collapse the specific violation
// into a generic message before it reaches a client.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}
	return nil
}
