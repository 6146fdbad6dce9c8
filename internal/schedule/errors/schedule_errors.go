package scheduleerrors

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
	ErrNameRequired = apperror.New(
		apperror.CodeValidation,
		"name is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeValidation,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidWeekRange = apperror.New(
		apperror.CodeValidation,
		"week_start_date must be before or equal week_end_date",
		http.StatusBadRequest,
	)
	ErrShiftOutsideWeek = apperror.New(
		apperror.CodeValidation,
		"shift_date must fall within the schedule week",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule not found",
		http.StatusNotFound,
	)
	// ErrScheduleAssignmentIncomplete means the manual path could not confirm
	// every shift. Running the assignment again is safe.
	ErrScheduleAssignmentIncomplete = apperror.New(
		apperror.CodeOperational,
		"schedule assignment incomplete, retry the assignment",
		http.StatusInternalServerError,
	)
)
