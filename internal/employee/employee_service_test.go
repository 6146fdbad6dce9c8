package employee_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"workcurb/internal/employee"
	employeeerrors "workcurb/internal/employee/errors"
	employeeMock "workcurb/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo)

		hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).Return(&employee.Employee{
			ID:        uuid.MustParse(id),
			CompanyID: uuid.MustParse(companyID),
			FullName:  "Ana Lima",
			Email:     "ana@example.com",
			Role:      employee.RoleEmployee,
			HireDate:  &hired,
			IsActive:  true,
		}, nil)

		resp, err := svc.GetByID(ctx, companyID, id)

		assert.NoError(t, err)
		assert.Equal(t, "Ana Lima", resp.FullName)
		assert.Equal(t, "2024-03-01", *resp.HireDate)
	})

	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo)

		repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, companyID, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative malformed id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employee.NewService(employeeMock.NewMockRepository(ctrl))

		_, err := svc.GetByID(ctx, companyID, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestService_GetByIDSharedLookup(t *testing.T) {
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("a cancelled caller does not fail the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo)

		started := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).
			DoAndReturn(func(ctx context.Context, cid, eid string) (*employee.Employee, error) {
				once.Do(func() { close(started) })
				<-release
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return &employee.Employee{
					ID:        uuid.MustParse(eid),
					CompanyID: uuid.MustParse(cid),
					FullName:  "Ana Lima",
				}, nil
			}).
			AnyTimes()

		leaderCtx, cancel := context.WithCancel(context.Background())
		leaderErr := make(chan error, 1)
		go func() {
			_, err := svc.GetByID(leaderCtx, companyID, id)
			leaderErr <- err
		}()
		<-started

		followerResp := make(chan employee.EmployeeResponse, 1)
		followerErr := make(chan error, 1)
		go func() {
			resp, err := svc.GetByID(context.Background(), companyID, id)
			followerResp <- resp
			followerErr <- err
		}()

		cancel()
		assert.ErrorIs(t, <-leaderErr, context.Canceled)

		// Give the second caller time to join the in-flight lookup.
		time.Sleep(20 * time.Millisecond)
		close(release)

		assert.NoError(t, <-followerErr)
		assert.Equal(t, "Ana Lima", (<-followerResp).FullName)
	})
}
