package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"workcurb/internal/events"
	"workcurb/internal/leave"
	leaveerrors "workcurb/internal/leave/errors"
	"workcurb/internal/messaging/kafka/kafkatest"
	"workcurb/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn                 func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDAndCompanyFn     func(ctx context.Context, companyID, id string) (*leave.LeaveRequest, error)
	listByCompanyFn          func(ctx context.Context, companyID, employeeID string) ([]leave.LeaveRequest, error)
	reviewPendingFn          func(ctx context.Context, companyID, id, status, reviewedBy string, reviewedAt time.Time) (bool, error)
	employeeBelongsToCompany func(ctx context.Context, companyID, employeeID string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *gorm.DB) leave.Repository {
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.LeaveRequest, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) ListByCompany(ctx context.Context, companyID, employeeID string) ([]leave.LeaveRequest, error) {
	if f.listByCompanyFn != nil {
		return f.listByCompanyFn(ctx, companyID, employeeID)
	}
	return []leave.LeaveRequest{}, nil
}

func (f *fakeLeaveRepository) ReviewPending(ctx context.Context, companyID, id, status, reviewedBy string, reviewedAt time.Time) (bool, error) {
	if f.reviewPendingFn != nil {
		return f.reviewPendingFn(ctx, companyID, id, status, reviewedBy, reviewedAt)
	}
	return false, nil
}

func (f *fakeLeaveRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.employeeBelongsToCompany != nil {
		return f.employeeBelongsToCompany(ctx, companyID, employeeID)
	}
	return true, nil
}

type leaveServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
	outbox  *kafkatest.RecordingOutbox
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, mock := testdb.Mock(t)
	repo := &fakeLeaveRepository{}
	outbox := &kafkatest.RecordingOutbox{}

	return &leaveServiceDeps{
		sqlMock: mock,
		service: leave.NewService(db, repo, outbox),
		repo:    repo,
		outbox:  outbox,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	validReq := leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "annual",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
		Reason:     "Family event",
	}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)

		var stored *leave.LeaveRequest
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			stored = l
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, validReq)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "2026-03-01", resp.StartDate)
		assert.NotEmpty(t, resp.AppliedDate)
		assert.Nil(t, resp.ReviewedDate)
		if assert.NotNil(t, stored) {
			assert.False(t, stored.AppliedDate.IsZero())
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative start after end", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		req := validReq
		req.StartDate, req.EndDate = "2026-03-05", "2026-03-01"

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative missing reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		req := validReq
		req.Reason = "   "

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrReasonRequired)
	})

	t.Run("negative employee outside company rolls back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.employeeBelongsToCompany = func(ctx context.Context, cid, eid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, companyID, validReq)

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotInCompany)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success second request for the same period", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)
		testdb.ExpectTx(deps.sqlMock, true)

		created := 0
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			created++
			return nil
		}

		_, err := deps.service.Create(ctx, companyID, validReq)
		assert.NoError(t, err)
		_, err = deps.service.Create(ctx, companyID, validReq)
		assert.NoError(t, err)

		assert.Equal(t, 2, created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Review(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	leaveID := uuid.New()
	reviewerID := uuid.New()

	stored := func(status string) *leave.LeaveRequest {
		l := &leave.LeaveRequest{
			ID:          leaveID,
			CompanyID:   companyID,
			EmployeeID:  uuid.New(),
			LeaveType:   "annual",
			StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			Status:      status,
			AppliedDate: time.Now().UTC(),
		}
		if status != leave.StatusPending {
			now := time.Now().UTC()
			l.ReviewedBy = &reviewerID
			l.ReviewedDate = &now
		}
		return l
	}

	t.Run("success approves and writes outbox event", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)

		deps.repo.reviewPendingFn = func(ctx context.Context, cid, id, status, by string, at time.Time) (bool, error) {
			assert.Equal(t, leave.StatusApproved, status)
			assert.Equal(t, reviewerID.String(), by)
			return true, nil
		}
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return stored(leave.StatusApproved), nil
		}

		resp, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "approved",
			ReviewedBy: reviewerID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ReviewedDate)
		if assert.Len(t, deps.outbox.Created, 1) {
			ev := deps.outbox.Created[0]
			assert.Equal(t, events.LeaveReviewedTopic, ev.Topic)
			var payload events.LeaveReviewedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "approved", payload.Status)
			assert.Equal(t, "2026-03-01", payload.StartDate)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative other status is a validation error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "cancelled",
			ReviewedBy: reviewerID.String(),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidReviewStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative mixed-case status is a validation error", func(t *testing.T) {
		for _, status := range []string{"APPROVED", " approved ", "Rejected"} {
			deps := setupLeaveServiceTest(t)

			_, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
				Status:     status,
				ReviewedBy: reviewerID.String(),
			})

			assert.ErrorIs(t, err, leaveerrors.ErrInvalidReviewStatus, status)
			assert.Empty(t, deps.outbox.Created)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		}
	})

	t.Run("repeating the same decision is idempotent", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return stored(leave.StatusRejected), nil
		}

		resp, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "rejected",
			ReviewedBy: reviewerID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Empty(t, deps.outbox.Created)
	})

	t.Run("negative conflicting decision", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return stored(leave.StatusApproved), nil
		}

		_, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "rejected",
			ReviewedBy: reviewerID.String(),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyReviewed)
		assert.Empty(t, deps.outbox.Created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)

		_, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "approved",
			ReviewedBy: reviewerID.String(),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative store failure", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.reviewPendingFn = func(context.Context, string, string, string, string, time.Time) (bool, error) {
			return false, errors.New("deadlock detected")
		}

		_, err := deps.service.Review(ctx, companyID.String(), leaveID.String(), leave.ReviewLeaveRequest{
			Status:     "approved",
			ReviewedBy: reviewerID.String(),
		})

		assert.ErrorContains(t, err, "deadlock detected")
	})
}
