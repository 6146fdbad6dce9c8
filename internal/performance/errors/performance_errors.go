package performanceerrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidRaterID = apperror.New(
		apperror.CodeValidation,
		"invalid rated_by",
		http.StatusBadRequest,
	)
	ErrScoreRequired = apperror.New(
		apperror.CodeValidation,
		"all four scores are required",
		http.StatusBadRequest,
	)
	ErrScoreOutOfRange = apperror.New(
		apperror.CodeValidation,
		"score is out of range",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"employee does not belong to this company",
		http.StatusNotFound,
	)
)
