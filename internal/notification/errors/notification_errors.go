package notificationerrors

import (
	"net/http"

	"workcurb/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeValidation,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"role must be ADMIN or EMPLOYEE",
		http.StatusBadRequest,
	)
	// ErrMailDeliveryFailed is returned after the record was stored. Details
	// carry the record id so the caller can retry the email only.
	ErrMailDeliveryFailed = apperror.New(
		apperror.CodeMailDelivery,
		"record saved but the email could not be sent",
		http.StatusBadGateway,
	)
)
