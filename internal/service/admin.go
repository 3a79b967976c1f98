package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/repository"
	"dressrent-backend/internal/security"
)

// ErrInvalidPassword is returned when the shared admin secret does not match.
var ErrInvalidPassword = errors.New("invalid admin password")

type adminService struct {
	resetter     repository.Resetter
	tokens       security.TokenManager
	passwordHash string
}

// NewAdminService wires the shared-secret admin gate. passwordHash is the
// bcrypt hash of the shop's admin password from configuration.
func NewAdminService(resetter repository.Resetter, tokens security.TokenManager, passwordHash string) AdminService {
	return &adminService{
		resetter:     resetter,
		tokens:       tokens,
		passwordHash: passwordHash,
	}
}

func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.tokens.GenerateAdminToken()
}

func (s *adminService) ResetData(ctx context.Context) error {
	if err := s.resetter.Reset(ctx); err != nil {
		return err
	}
	logger.Warn("All data reset by admin")
	return nil
}
