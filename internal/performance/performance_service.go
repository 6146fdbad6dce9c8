package performance

import (
	"context"
	"fmt"
	"time"

	performanceerrors "workcurb/internal/performance/errors"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultScaleMax = 10.0

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, companyID string, req RecordRatingRequest) (RatingResponse, error)
	List(ctx context.Context, companyID, employeeID string) ([]RatingResponse, error)
}

type service struct {
	repo     Repository
	scaleMax float64
	logger   *zap.Logger
}

// NewService builds the rating service. Scores are accepted in [0, scaleMax];
// a non-positive scaleMax falls back to DefaultScaleMax.
func NewService(repo Repository, scaleMax float64, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	if scaleMax <= 0 {
		scaleMax = DefaultScaleMax
	}
	return &service{repo: repo, scaleMax: scaleMax, logger: l}
}

func (s *service) Record(ctx context.Context, companyID string, req RecordRatingRequest) (RatingResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RatingResponse{}, performanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return RatingResponse{}, performanceerrors.ErrInvalidEmployeeID
	}
	raterUUID, err := uuid.Parse(req.RatedBy)
	if err != nil {
		return RatingResponse{}, performanceerrors.ErrInvalidRaterID
	}

	scores := []struct {
		name  string
		value *float64
	}{
		{"productivity", req.Productivity},
		{"quality", req.Quality},
		{"teamwork", req.Teamwork},
		{"punctuality", req.Punctuality},
	}
	for _, sc := range scores {
		if sc.value == nil {
			return RatingResponse{}, performanceerrors.ErrScoreRequired.WithDetails(map[string]string{"field": sc.name})
		}
		if *sc.value < 0 || *sc.value > s.scaleMax {
			return RatingResponse{}, performanceerrors.ErrScoreOutOfRange.WithDetails(map[string]string{
				"field":   sc.name,
				"allowed": fmt.Sprintf("0-%g", s.scaleMax),
			})
		}
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return RatingResponse{}, apperror.Operational(err)
	}
	if !belongs {
		return RatingResponse{}, performanceerrors.ErrEmployeeNotInCompany
	}

	rating := &PerformanceRating{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		EmployeeID:   employeeUUID,
		RatedBy:      raterUUID,
		Productivity: *req.Productivity,
		Quality:      *req.Quality,
		Teamwork:     *req.Teamwork,
		Punctuality:  *req.Punctuality,
		Comments:     req.Comments,
	}
	rating.OverallPercentage = OverallScore(rating.Productivity, rating.Quality, rating.Teamwork, rating.Punctuality)

	if err := s.repo.Create(ctx, rating); err != nil {
		log.Error("record rating failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return RatingResponse{}, apperror.Operational(err)
	}

	log.Info("record rating success",
		zap.String("rating_id", rating.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("overall", rating.OverallPercentage),
	)
	return mapToResponse(*rating), nil
}

func (s *service) List(ctx context.Context, companyID, employeeID string) ([]RatingResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, performanceerrors.ErrInvalidEmployeeID
	}

	ratings, err := s.repo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, apperror.Operational(err)
	}

	resp := make([]RatingResponse, len(ratings))
	for i, r := range ratings {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

// OverallScore is the arithmetic mean of the four components, in float.
func OverallScore(productivity, quality, teamwork, punctuality float64) float64 {
	return (productivity + quality + teamwork + punctuality) / 4
}

func mapToResponse(r PerformanceRating) RatingResponse {
	return RatingResponse{
		ID:                r.ID.String(),
		CompanyID:         r.CompanyID.String(),
		EmployeeID:        r.EmployeeID.String(),
		RatedBy:           r.RatedBy.String(),
		Productivity:      r.Productivity,
		Quality:           r.Quality,
		Teamwork:          r.Teamwork,
		Punctuality:       r.Punctuality,
		OverallPercentage: r.OverallPercentage,
		Comments:          r.Comments,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
	}
}
