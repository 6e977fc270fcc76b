package usecase

import (
	"context"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/pkg/apperr"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

// adminID is the fixed identity of the single configured admin account.
const adminID = "1"

// AuthService verifies admin credentials against the configured identity and
// issues/verifies signed session tokens. State-free: there is no user table.
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)

	// ValidateCredentials returns the admin identity on match, nil
	// otherwise. It never reveals which check failed.
	ValidateCredentials(email, password string) *entity.AdminUser

	IssueToken(admin *entity.AdminUser) (string, time.Time, error)

	// VerifyToken returns nil on any verification failure (expired,
	// malformed, bad signature). Claims absent from a legacy token fall
	// back to the configured identity's fields.
	VerifyToken(token string) *entity.AdminUser
}

type authService struct {
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) configuredAdmin() *entity.AdminUser {
	return &entity.AdminUser{
		ID:           adminID,
		Email:        s.config.Admin.Email,
		PasswordHash: s.config.Admin.PasswordHash,
		Role:         "admin",
	}
}

func (s *authService) ValidateCredentials(email, password string) *entity.AdminUser {
	if email == "" || password == "" {
		return nil
	}

	admin := s.configuredAdmin()
	if email != admin.Email {
		return nil
	}

	// The stored hash decides the scheme: bcrypt for migrated credentials,
	// legacy digest comparison for the rest.
	if !utils.VerifyPassword(password, admin.PasswordHash) {
		return nil
	}

	return admin
}

func (s *authService) IssueToken(admin *entity.AdminUser) (string, time.Time, error) {
	return utils.SignAdminToken(
		s.config.JWT.Secret,
		admin.ID,
		admin.Email,
		admin.Role,
		s.config.JWT.ExpiryHours,
	)
}

func (s *authService) VerifyToken(token string) *entity.AdminUser {
	claims, err := utils.ParseAdminToken(s.config.JWT.Secret, token)
	if err != nil {
		s.log.Warn("Token verification failed", zap.Error(err))
		return nil
	}

	admin := s.configuredAdmin()
	if claims.Subject != "" {
		admin.ID = claims.Subject
	}
	if claims.Email != "" {
		admin.Email = claims.Email
	}
	if claims.Role != "" {
		admin.Role = claims.Role
	}

	return admin
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	admin := s.ValidateCredentials(req.Email, req.Password)
	if admin == nil {
		// Same message whether the email or the password was wrong
		s.log.Warn("Admin login failed", zap.String("email", req.Email))
		return nil, apperr.ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(admin)
	if err != nil {
		s.log.Error("Failed to issue admin token", zap.Error(err))
		return nil, err
	}

	s.log.Info("Admin logged in", zap.String("email", admin.Email))

	return &response.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Admin: response.AdminResponse{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  admin.Role,
		},
	}, nil
}
