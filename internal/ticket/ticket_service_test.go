package ticket_test

import (
	"context"
	"errors"
	"testing"

	"workcurb/internal/ticket"
	ticketerrors "workcurb/internal/ticket/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTicketRepository struct {
	createFn         func(ctx context.Context, t *ticket.EmployeeTicket) error
	listByEmployeeFn func(ctx context.Context, companyID, employeeID string) ([]ticket.EmployeeTicket, error)
	belongsFn        func(ctx context.Context, companyID, employeeID string) (bool, error)
}

func (f *fakeTicketRepository) Create(ctx context.Context, t *ticket.EmployeeTicket) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTicketRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]ticket.EmployeeTicket, error) {
	if f.listByEmployeeFn != nil {
		return f.listByEmployeeFn(ctx, companyID, employeeID)
	}
	return []ticket.EmployeeTicket{}, nil
}

func (f *fakeTicketRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.belongsFn != nil {
		return f.belongsFn(ctx, companyID, employeeID)
	}
	return true, nil
}

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success applies defaults", func(t *testing.T) {
		var stored *ticket.EmployeeTicket
		repo := &fakeTicketRepository{
			createFn: func(ctx context.Context, tk *ticket.EmployeeTicket) error {
				stored = tk
				return nil
			},
		}
		svc := ticket.NewService(repo)

		resp, err := svc.Create(ctx, companyID, ticket.CreateTicketRequest{
			EmployeeID: employeeID,
			Title:      "  Laptop will not boot  ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Laptop will not boot", resp.Title)
		assert.Equal(t, ticket.DefaultCategory, resp.Category)
		assert.Equal(t, ticket.DefaultPriority, resp.Priority)
		assert.Equal(t, ticket.StatusOpen, resp.Status)
		if assert.NotNil(t, stored) {
			assert.Equal(t, companyID, stored.CompanyID.String())
		}
	})

	t.Run("success keeps explicit category and priority", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		resp, err := svc.Create(ctx, companyID, ticket.CreateTicketRequest{
			EmployeeID: employeeID,
			Title:      "Payroll question",
			Category:   "Payroll",
			Priority:   "High",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Payroll", resp.Category)
		assert.Equal(t, "High", resp.Priority)
	})

	t.Run("negative blank title", func(t *testing.T) {
		repo := &fakeTicketRepository{
			createFn: func(ctx context.Context, tk *ticket.EmployeeTicket) error {
				t.Fatal("create must not be called")
				return nil
			},
		}
		svc := ticket.NewService(repo)

		_, err := svc.Create(ctx, companyID, ticket.CreateTicketRequest{EmployeeID: employeeID, Title: "   "})

		assert.ErrorIs(t, err, ticketerrors.ErrTitleRequired)
	})

	t.Run("negative empty company", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		_, err := svc.Create(ctx, "", ticket.CreateTicketRequest{EmployeeID: employeeID, Title: "x"})

		assert.ErrorIs(t, err, ticketerrors.ErrInvalidCompanyID)
	})

	t.Run("negative employee outside company", func(t *testing.T) {
		repo := &fakeTicketRepository{
			belongsFn: func(ctx context.Context, companyID, employeeID string) (bool, error) { return false, nil },
		}
		svc := ticket.NewService(repo)

		_, err := svc.Create(ctx, companyID, ticket.CreateTicketRequest{EmployeeID: employeeID, Title: "x"})

		assert.ErrorIs(t, err, ticketerrors.ErrEmployeeNotInCompany)
	})

	t.Run("negative store failure", func(t *testing.T) {
		repo := &fakeTicketRepository{
			createFn: func(ctx context.Context, tk *ticket.EmployeeTicket) error { return errors.New("connection reset") },
		}
		svc := ticket.NewService(repo)

		_, err := svc.Create(ctx, companyID, ticket.CreateTicketRequest{EmployeeID: employeeID, Title: "x"})

		assert.ErrorContains(t, err, "connection reset")
	})
}
