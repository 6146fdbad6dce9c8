package employee

import (
	"context"
	"time"

	employeeerrors "workcurb/internal/employee/errors"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	// Dashboard snapshots and credential checks often load the same profile at
	// once. The shared read ignores any single caller's cancellation; each
	// caller still stops waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(companyID+":"+id, func() (any, error) {
		return s.repo.FindByIDAndCompany(shared, companyID, id)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return EmployeeResponse{}, ctx.Err()
	}

	v, err := res.Val, res.Err
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Debug("get employee failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapRepositoryError(err)
	}
	return MapToResponse(*v.(*Employee)), nil
}

func MapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		FullName:   e.FullName,
		Email:      e.Email,
		Role:       e.Role,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		v := e.HireDate.Format("2006-01-02")
		resp.HireDate = &v
	}
	return resp
}
