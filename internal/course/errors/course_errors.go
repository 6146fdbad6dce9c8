package courseerrors

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
	ErrInvalidCourseID = apperror.New(
		apperror.CodeValidation,
		"invalid course id",
		http.StatusBadRequest,
	)
	ErrInvalidAssignerID = apperror.New(
		apperror.CodeValidation,
		"invalid assigned_by",
		http.StatusBadRequest,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeValidation,
		"title is required",
		http.StatusBadRequest,
	)
	ErrInvalidIncrement = apperror.New(
		apperror.CodeValidation,
		"increment_percent must be greater than 0 and at most 100",
		http.StatusBadRequest,
	)
	ErrCourseNotFound = apperror.New(
		apperror.CodeNotFound,
		"course not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"employee does not belong to this company",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"course assignment not found",
		http.StatusNotFound,
	)
	ErrCourseAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"course is already assigned to this employee",
		http.StatusConflict,
	)
)
