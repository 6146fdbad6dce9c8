package leave_test

import (
	"context"
	"testing"
	"time"

	"workcurb/internal/leave"
	"workcurb/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ReviewPendingOnlyOnce(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &leave.LeaveRequest{})
	repo := leave.NewRepository(db)

	companyID := uuid.New()
	l := &leave.LeaveRequest{
		ID:          uuid.New(),
		CompanyID:   companyID,
		EmployeeID:  uuid.New(),
		LeaveType:   "sick",
		StartDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Reason:      "flu",
		Status:      leave.StatusPending,
		AppliedDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, l))

	reviewer := uuid.NewString()
	ok, err := repo.ReviewPending(ctx, companyID.String(), l.ID.String(), leave.StatusApproved, reviewer, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ReviewPending(ctx, companyID.String(), l.ID.String(), leave.StatusRejected, reviewer, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)

	var status string
	require.NoError(t, db.Model(&leave.LeaveRequest{}).Where("id = ?", l.ID).Pluck("status", &status).Error)
	assert.Equal(t, leave.StatusApproved, status)

	var reviewed int64
	require.NoError(t, db.Model(&leave.LeaveRequest{}).
		Where("id = ? AND reviewed_date IS NOT NULL AND reviewed_by IS NOT NULL", l.ID).
		Count(&reviewed).Error)
	assert.Equal(t, int64(1), reviewed)
}

func TestRepository_ReviewPendingIsTenantScoped(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &leave.LeaveRequest{})
	repo := leave.NewRepository(db)

	l := &leave.LeaveRequest{
		ID:          uuid.New(),
		CompanyID:   uuid.New(),
		EmployeeID:  uuid.New(),
		LeaveType:   "annual",
		StartDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Reason:      "trip",
		Status:      leave.StatusPending,
		AppliedDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, l))

	ok, err := repo.ReviewPending(ctx, uuid.NewString(), l.ID.String(), leave.StatusApproved, uuid.NewString(), time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)
}
