package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

var redactInternal atomic.Bool

// SetRedactInternal controls whether unmapped errors keep their original
// message in HTTP responses.
func SetRedactInternal(v bool) {
	redactInternal.Store(v)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

// Operational wraps a store or provider failure. The message of the
// underlying error is kept.
func Operational(err error) *AppError {
	if err == nil {
		return nil
	}
	return Wrap(err, CodeOperational, "operation failed", http.StatusInternalServerError)
}

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Err != nil && appErr.HTTPStatus >= http.StatusInternalServerError && !redactInternal.Load() {
			msg = appErr.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: msg,
			Details: appErr.Details,
		}
	}

	if redactInternal.Load() {
		return HTTPError{
			Status:  ErrInternal.HTTPStatus,
			Code:    ErrInternal.Code,
			Message: ErrInternal.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeOperational,
		Message: err.Error(),
	}
}
