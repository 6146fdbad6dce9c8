package credentialerrors

import (
	"net/http"

	"workcurb/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeUnauthorized,
		"Account is inactive",
		http.StatusUnauthorized,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"new password must be at least 8 characters",
		http.StatusBadRequest,
	)
	ErrPasswordMissingUpper = apperror.New(
		apperror.CodeValidation,
		"new password must contain an uppercase letter",
		http.StatusBadRequest,
	)
	ErrPasswordMissingLower = apperror.New(
		apperror.CodeValidation,
		"new password must contain a lowercase letter",
		http.StatusBadRequest,
	)
	ErrPasswordMissingDigit = apperror.New(
		apperror.CodeValidation,
		"new password must contain a digit",
		http.StatusBadRequest,
	)
	ErrPasswordMissingSpecial = apperror.New(
		apperror.CodeValidation,
		"new password must contain a special character",
		http.StatusBadRequest,
	)
	ErrPasswordUnchanged = apperror.New(
		apperror.CodeValidation,
		"new password must differ from the current password",
		http.StatusBadRequest,
	)
	ErrPasswordConfirmation = apperror.New(
		apperror.CodeValidation,
		"new password and confirmation do not match",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
)
