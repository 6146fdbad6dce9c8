package course

import (
	"errors"
	"strings"

	courseerrors "workcurb/internal/course/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation      = "23505"
	assignmentConstraint = "uq_employee_courses_employee_course"
)

func mapAssignError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == assignmentConstraint {
		return courseerrors.ErrCourseAlreadyAssigned
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, assignmentConstraint) {
		return courseerrors.ErrCourseAlreadyAssigned
	}
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "employee_courses.") {
		return courseerrors.ErrCourseAlreadyAssigned
	}
	return err
}
