package billingerrors

import (
	"net/http"

	"workcurb/internal/shared/apperror"
)

var (
	ErrUnknownPlan = apperror.New(
		apperror.CodeValidation,
		"plan must be starter, professional or enterprise",
		http.StatusBadRequest,
	)
	ErrInvalidSeats = apperror.New(
		apperror.CodeValidation,
		"seats must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeValidation,
		"payment_method must be card, bank_transfer or invoice",
		http.StatusBadRequest,
	)
	ErrMailDeliveryFailed = apperror.New(
		apperror.CodeMailDelivery,
		"order saved but the confirmation email could not be sent",
		http.StatusBadGateway,
	)
)
