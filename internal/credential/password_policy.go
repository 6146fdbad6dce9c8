package credential

import (
	"unicode"

	credentialerrors "workcurb/internal/credential/errors"
)

const MinPasswordLength = 8

// ValidatePasswordPolicy enforces the password complexity rules shown to
// users when they pick a new password.
func ValidatePasswordPolicy(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return credentialerrors.ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return credentialerrors.ErrPasswordMissingUpper
	case !hasLower:
		return credentialerrors.ErrPasswordMissingLower
	case !hasDigit:
		return credentialerrors.ErrPasswordMissingDigit
	case !hasSpecial:
		return credentialerrors.ErrPasswordMissingSpecial
	}
	return nil
}
