package company_test

import (
	"context"
	"errors"
	"testing"

	"workcurb/internal/company"
	companyerrors "workcurb/internal/company/errors"
	companyMock "workcurb/internal/company/mock"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_CreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("success", func(t *testing.T) {
		creator := uuid.New()
		mockRepo.EXPECT().CreateEvent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *company.CompanyEvent) error {
			assert.Equal(t, companyID, e.CompanyID)
			assert.Equal(t, "Town hall", e.Title)
			assert.Equal(t, "2026-05-04", e.EventDate.Format("2006-01-02"))
			if assert.NotNil(t, e.CreatedBy) {
				assert.Equal(t, creator, *e.CreatedBy)
			}
			return nil
		})

		resp, err := service.CreateEvent(ctx, companyID.String(), creator.String(), company.CreateEventRequest{
			Title:     "  Town hall ",
			EventDate: "2026-05-04",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Town hall", resp.Title)
		assert.Equal(t, "2026-05-04", resp.EventDate)
	})

	t.Run("negative blank title", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, companyID.String(), "", company.CreateEventRequest{Title: "  ", EventDate: "2026-05-04"})
		assert.ErrorIs(t, err, companyerrors.ErrTitleRequired)
	})

	t.Run("negative bad date", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, companyID.String(), "", company.CreateEventRequest{Title: "Offsite", EventDate: "04/05/2026"})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidEventDate)
	})

	t.Run("negative invalid company", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, "acme", "", company.CreateEventRequest{Title: "Offsite", EventDate: "2026-05-04"})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})

	t.Run("negative store failure", func(t *testing.T) {
		mockRepo.EXPECT().CreateEvent(ctx, gomock.Any()).Return(errors.New("connection refused"))

		_, err := service.CreateEvent(ctx, companyID.String(), "", company.CreateEventRequest{Title: "Offsite", EventDate: "2026-05-04"})
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, apperror.CodeOperational, appErr.Code)
		}
	})
}

func TestService_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success empty", func(t *testing.T) {
		companyID := uuid.NewString()
		mockRepo.EXPECT().ListEvents(ctx, companyID).Return([]company.CompanyEvent{}, nil)

		resp, err := service.ListEvents(ctx, companyID)
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("negative invalid company", func(t *testing.T) {
		_, err := service.ListEvents(ctx, "")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestRepository_ListEventsIsTenantScoped(t *testing.T) {
	db := testdb.Open(t, &company.CompanyEvent{})
	repo := company.NewRepository(db)
	ctx := context.Background()

	mine := uuid.New()
	other := uuid.New()
	for _, cid := range []uuid.UUID{mine, mine, other} {
		assert.NoError(t, repo.CreateEvent(ctx, &company.CompanyEvent{
			ID:        uuid.New(),
			CompanyID: cid,
			Title:     "Quarterly review",
		}))
	}

	var count int64
	assert.NoError(t, db.Model(&company.CompanyEvent{}).Where("company_id = ?", mine).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
