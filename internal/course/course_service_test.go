package course_test

import (
	"context"
	"sync"
	"testing"

	"workcurb/internal/course"
	courseerrors "workcurb/internal/course/errors"
	"workcurb/internal/employee"
	"workcurb/internal/events"
	"workcurb/internal/messaging/kafka/kafkatest"
	"workcurb/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type courseFixture struct {
	db         *gorm.DB
	service    course.Service
	outbox     *kafkatest.RecordingOutbox
	companyID  string
	employeeID string
	courseID   string
}

func setupCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	db := testdb.Open(t, &employee.Employee{}, &course.TrainingCourse{}, &course.EmployeeCourse{})
	companyID := uuid.New()
	emp := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		FullName:     "Dana Reyes",
		Email:        "dana@example.com",
		PasswordHash: "hash",
		Role:         employee.RoleEmployee,
		IsActive:     true,
	}
	require.NoError(t, db.Create(emp).Error)
	tc := &course.TrainingCourse{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Title:         "Fire safety",
		DurationHours: 2,
	}
	require.NoError(t, db.Create(tc).Error)

	outbox := &kafkatest.RecordingOutbox{}
	return &courseFixture{
		db:         db,
		service:    course.NewService(db, course.NewRepository(db), outbox),
		outbox:     outbox,
		companyID:  companyID.String(),
		employeeID: emp.ID.String(),
		courseID:   tc.ID.String(),
	}
}

func (f *courseFixture) assignRequest() course.AssignCourseRequest {
	return course.AssignCourseRequest{
		EmployeeID: f.employeeID,
		CourseID:   f.courseID,
		AssignedBy: uuid.NewString(),
	}
}

func (f *courseFixture) countAssignments(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&course.EmployeeCourse{}).
		Where("employee_id = ? AND course_id = ?", f.employeeID, f.courseID).
		Count(&count).Error)
	return count
}

func TestCourseService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setupCourseFixture(t)

		resp, err := f.service.Assign(ctx, f.companyID, f.assignRequest())

		require.NoError(t, err)
		assert.Equal(t, course.StatusAssigned, resp.Status)
		assert.Equal(t, 0, resp.Progress)
		assert.Nil(t, resp.CompletedAt)
	})

	t.Run("assigning twice keeps one row", func(t *testing.T) {
		f := setupCourseFixture(t)

		_, err := f.service.Assign(ctx, f.companyID, f.assignRequest())
		require.NoError(t, err)

		_, err = f.service.Assign(ctx, f.companyID, f.assignRequest())
		assert.ErrorIs(t, err, courseerrors.ErrCourseAlreadyAssigned)
		assert.Equal(t, int64(1), f.countAssignments(t))
	})

	t.Run("concurrent assignments keep one row", func(t *testing.T) {
		f := setupCourseFixture(t)

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.service.Assign(ctx, f.companyID, f.assignRequest())
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, courseerrors.ErrCourseAlreadyAssigned)
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(1), f.countAssignments(t))
	})

	t.Run("negative course from another company", func(t *testing.T) {
		f := setupCourseFixture(t)
		req := f.assignRequest()
		req.CourseID = uuid.NewString()

		_, err := f.service.Assign(ctx, f.companyID, req)

		assert.ErrorIs(t, err, courseerrors.ErrCourseNotFound)
	})
}

func TestCourseService_UpdateProgress(t *testing.T) {
	ctx := context.Background()

	progress := func(f *courseFixture, inc int) (course.AssignmentResponse, error) {
		return f.service.UpdateProgress(ctx, f.companyID, course.UpdateProgressRequest{
			EmployeeID:       f.employeeID,
			CourseID:         f.courseID,
			IncrementPercent: inc,
		})
	}

	t.Run("increments move to in progress", func(t *testing.T) {
		f := setupCourseFixture(t)
		_, err := f.service.Assign(ctx, f.companyID, f.assignRequest())
		require.NoError(t, err)

		resp, err := progress(f, 40)

		require.NoError(t, err)
		assert.Equal(t, 40, resp.Progress)
		assert.Equal(t, course.StatusInProgress, resp.Status)
		assert.Nil(t, resp.CompletedAt)
		assert.Empty(t, f.outbox.Events())
	})

	t.Run("progress is clamped at 100 and completes once", func(t *testing.T) {
		f := setupCourseFixture(t)
		_, err := f.service.Assign(ctx, f.companyID, f.assignRequest())
		require.NoError(t, err)

		_, err = progress(f, 60)
		require.NoError(t, err)

		resp, err := progress(f, 60)
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Progress)
		assert.Equal(t, course.StatusCompleted, resp.Status)
		require.NotNil(t, resp.CompletedAt)
		firstCompletion := *resp.CompletedAt

		resp, err = progress(f, 10)
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Progress)
		assert.Equal(t, course.StatusCompleted, resp.Status)
		require.NotNil(t, resp.CompletedAt)
		assert.Equal(t, firstCompletion, *resp.CompletedAt)

		evs := f.outbox.Events()
		require.Len(t, evs, 1)
		assert.Equal(t, events.CourseCompletedType, evs[0].EventType)
	})

	t.Run("negative increment out of range", func(t *testing.T) {
		f := setupCourseFixture(t)

		for _, inc := range []int{0, -5, 101} {
			_, err := progress(f, inc)
			assert.ErrorIs(t, err, courseerrors.ErrInvalidIncrement)
		}
	})

	t.Run("negative no assignment", func(t *testing.T) {
		f := setupCourseFixture(t)

		_, err := progress(f, 10)

		assert.ErrorIs(t, err, courseerrors.ErrAssignmentNotFound)
	})
}

func TestCourseService_ListAssignments(t *testing.T) {
	ctx := context.Background()
	f := setupCourseFixture(t)

	empty, err := f.service.ListAssignments(ctx, f.companyID, f.employeeID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = f.service.Assign(ctx, f.companyID, f.assignRequest())
	require.NoError(t, err)

	got, err := f.service.ListAssignments(ctx, f.companyID, f.employeeID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Course)
	assert.Equal(t, "Fire safety", got[0].Course.Title)
	assert.Equal(t, 2, got[0].Course.DurationHours)
}
