package ticket_test

import (
	"context"
	"testing"
	"time"

	"workcurb/internal/shared/testdb"
	"workcurb/internal/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListByEmployeeNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &ticket.EmployeeTicket{})
	repo := ticket.NewRepository(db)

	companyID := uuid.New()
	employeeID := uuid.New()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &ticket.EmployeeTicket{
			ID:         uuid.New(),
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Title:      title,
			Category:   ticket.DefaultCategory,
			Priority:   ticket.DefaultPriority,
			Status:     ticket.StatusOpen,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}
	// another tenant's ticket for the same employee id must not leak
	require.NoError(t, repo.Create(ctx, &ticket.EmployeeTicket{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		EmployeeID: employeeID,
		Title:      "foreign",
		Category:   ticket.DefaultCategory,
		Priority:   ticket.DefaultPriority,
		Status:     ticket.StatusOpen,
	}))

	got, err := repo.ListByEmployee(ctx, companyID.String(), employeeID.String())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Title)
	assert.Equal(t, "first", got[2].Title)
}

func TestRepository_ListByEmployeeEmpty(t *testing.T) {
	db := testdb.Open(t, &ticket.EmployeeTicket{})
	repo := ticket.NewRepository(db)

	got, err := repo.ListByEmployee(context.Background(), uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
