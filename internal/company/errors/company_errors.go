package companyerrors

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
	ErrTitleRequired = apperror.New(
		apperror.CodeValidation,
		"title is required",
		http.StatusBadRequest,
	)
	ErrInvalidEventDate = apperror.New(
		apperror.CodeValidation,
		"event_date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
