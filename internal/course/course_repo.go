package course

import (
	"context"
	"time"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=course_repo.go -destination=mock/course_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateCourse(ctx context.Context, c *TrainingCourse) error
	CourseExists(ctx context.Context, companyID, courseID string) (bool, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	CreateAssignment(ctx context.Context, a *EmployeeCourse) error
	AddProgress(ctx context.Context, companyID, employeeID, courseID string, increment int, now time.Time) (int64, error)
	FindAssignment(ctx context.Context, companyID, employeeID, courseID string) (*EmployeeCourse, error)
	ListAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateCourse(ctx context.Context, c *TrainingCourse) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) CourseExists(ctx context.Context, companyID, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TrainingCourse{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *EmployeeCourse) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// AddProgress applies increment in one statement so concurrent updates never
// lose each other. Progress is clamped at 100, status follows the clamped
// value and completed_at is set only the first time 100 is reached.
func (r *repository) AddProgress(ctx context.Context, companyID, employeeID, courseID string, increment int, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeCourse{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("course_id = ?", courseID).
		Updates(map[string]any{
			"progress": gorm.Expr("CASE WHEN progress + ? >= 100 THEN 100 ELSE progress + ? END", increment, increment),
			"status": gorm.Expr("CASE WHEN progress + ? >= 100 THEN ? ELSE ? END",
				increment, StatusCompleted, StatusInProgress),
			"completed_at": gorm.Expr("CASE WHEN progress + ? >= 100 THEN COALESCE(completed_at, ?) ELSE completed_at END",
				increment, now),
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindAssignment(ctx context.Context, companyID, employeeID, courseID string) (*EmployeeCourse, error) {
	var a EmployeeCourse
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("course_id = ?", courseID).
		First(&a).Error
	return &a, err
}

// ListAssignments returns the employee's assignments with course details,
// newest assignment first.
func (r *repository) ListAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentRow, error) {
	rows := make([]AssignmentRow, 0)
	err := r.db.WithContext(ctx).
		Table("employee_courses AS ec").
		Select(`ec.*,
			tc.title AS course_title,
			tc.description AS course_description,
			tc.duration_hours AS course_duration_hours`).
		Joins("JOIN training_courses tc ON tc.id = ec.course_id AND tc.company_id = ec.company_id").
		Scopes(tenant.Scope(companyID, "ec")).
		Where("ec.employee_id = ?", employeeID).
		Order("ec.assigned_at DESC").
		Scan(&rows).Error
	return rows, err
}
