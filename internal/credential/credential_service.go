package credential

import (
	"context"

	credentialerrors "workcurb/internal/credential/errors"
	"workcurb/internal/employee"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=credential_service.go -destination=mock/credential_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// ChangePassword reports false without error when the old password does
	// not match any active account for the email.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error)
}

type service struct {
	employeeRepo employee.Repository
	hashCost     int
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("credential.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("credential.service")
	}
	return &service{employeeRepo: employeeRepo, hashCost: bcrypt.DefaultCost, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	account, err := s.matchAccount(ctx, req.Email, "", req.Password)
	if err != nil {
		log.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, apperror.Operational(err)
	}
	if account == nil {
		log.Info("login rejected", zap.String("email", req.Email))
		return LoginResponse{}, credentialerrors.ErrInvalidCredentials
	}

	log.Info("login success",
		zap.String("employee_id", account.ID.String()),
		zap.String("company_id", account.CompanyID.String()),
	)
	return LoginResponse{
		Employee: employee.MapToResponse(*account),
		IsAdmin:  account.Role == employee.RoleAdmin,
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.ConfirmPassword != "" && req.ConfirmPassword != req.NewPassword {
		return false, credentialerrors.ErrPasswordConfirmation
	}
	if err := ValidatePasswordPolicy(req.NewPassword); err != nil {
		return false, err
	}
	if req.NewPassword == req.OldPassword {
		return false, credentialerrors.ErrPasswordUnchanged
	}
	if req.CompanyID != "" {
		if _, err := uuid.Parse(req.CompanyID); err != nil {
			return false, credentialerrors.ErrInvalidCompanyID
		}
	}

	account, err := s.matchAccount(ctx, req.Email, req.CompanyID, req.OldPassword)
	if err != nil {
		log.Error("change password lookup failed", zap.Error(err))
		return false, apperror.Operational(err)
	}
	if account == nil {
		log.Info("change password rejected: current password mismatch", zap.String("email", req.Email))
		return false, nil
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.hashCost)
	if err != nil {
		return false, apperror.Operational(err)
	}

	updated, err := s.employeeRepo.UpdatePasswordHash(ctx,
		account.CompanyID.String(),
		account.ID.String(),
		account.PasswordHash,
		string(newHash),
	)
	if err != nil {
		log.Error("change password persist failed",
			zap.String("employee_id", account.ID.String()),
			zap.Error(err),
		)
		return false, apperror.Operational(err)
	}
	if !updated {
		// hash changed between the lookup and the update
		log.Warn("change password lost race", zap.String("employee_id", account.ID.String()))
		return false, nil
	}

	log.Info("change password success", zap.String("employee_id", account.ID.String()))
	return true, nil
}

// matchAccount returns the first active account for email whose stored hash
// matches password, or nil when none does.
func (s *service) matchAccount(ctx context.Context, email, companyID, password string) (*employee.Employee, error) {
	candidates, err := s.employeeRepo.FindActiveByEmail(ctx, email, companyID)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].PasswordHash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].PasswordHash), []byte(password)) == nil {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
