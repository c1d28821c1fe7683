package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"academy-api/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single site admin against credentials held
// in configuration. There is no user table.
type AuthService struct {
	logger       *zap.Logger
	adminEmail   string
	passwordHash string
}

func NewAuthService(logger *zap.Logger, adminEmail, passwordHash string) *AuthService {
	return &AuthService{
		logger:       logger,
		adminEmail:   normalizeEmail(adminEmail),
		passwordHash: strings.TrimSpace(passwordHash),
	}
}

// Authenticate checks the admin credentials and returns the principal.
func (s *AuthService) Authenticate(emailAddr, password string) (domain.Admin, error) {
	if s.adminEmail == "" || s.passwordHash == "" {
		return domain.Admin{}, ErrInvalidCredentials
	}
	if normalizeEmail(emailAddr) != s.adminEmail {
		return domain.Admin{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("admin login rejected", zap.String("email", s.adminEmail))
		return domain.Admin{}, ErrInvalidCredentials
	}
	return domain.Admin{ID: "admin", Email: s.adminEmail}, nil
}
