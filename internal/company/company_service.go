package company

import (
	"context"
	"strings"
	"time"

	companyerrors "workcurb/internal/company/errors"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	CreateEvent(ctx context.Context, companyID, createdBy string, req CreateEventRequest) (EventResponse, error)
	ListEvents(ctx context.Context, companyID string) ([]EventResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateEvent(ctx context.Context, companyID, createdBy string, req CreateEventRequest) (EventResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EventResponse{}, companyerrors.ErrInvalidCompanyID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return EventResponse{}, companyerrors.ErrTitleRequired
	}
	eventDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.EventDate))
	if err != nil {
		return EventResponse{}, companyerrors.ErrInvalidEventDate
	}

	e := &CompanyEvent{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Title:       title,
		Description: req.Description,
		EventDate:   eventDate,
		CreatedAt:   time.Now().UTC(),
	}
	// a creator that is not an id (platform service accounts) is dropped
	if id, err := uuid.Parse(createdBy); err == nil {
		e.CreatedBy = &id
	}

	if err := s.repo.CreateEvent(ctx, e); err != nil {
		log.Error("create company event failed", zap.String("company_id", companyID), zap.Error(err))
		return EventResponse{}, apperror.Operational(err)
	}

	log.Info("company event created",
		zap.String("event_id", e.ID.String()),
		zap.String("company_id", companyID),
	)
	return MapToResponse(*e), nil
}

func (s *service) ListEvents(ctx context.Context, companyID string) ([]EventResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.ListEvents(ctx, companyID)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return MapToResponses(rows), nil
}

func MapToResponse(e CompanyEvent) EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		CompanyID:   e.CompanyID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.CreatedBy != nil {
		v := e.CreatedBy.String()
		resp.CreatedBy = &v
	}
	return resp
}

func MapToResponses(rows []CompanyEvent) []EventResponse {
	res := make([]EventResponse, len(rows))
	for i, r := range rows {
		res[i] = MapToResponse(r)
	}
	return res
}
