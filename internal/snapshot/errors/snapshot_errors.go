package snapshoterrors

import (
	"net/http"

	"workcurb/internal/shared/apperror"
)

var ErrForeignSnapshot = apperror.New(
	apperror.CodeForbidden,
	"employees may only read their own snapshot",
	http.StatusForbidden,
)
