package service

import (
	"context"
	"errors"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/repository"
	"rentops-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error) {
	logger.EnterMethod("authService.Login", "email", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown user and wrong password.
		logger.ExitMethodWithError("authService.Login", ErrInvalidCredentials, "email", email)
		return nil, nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return nil, nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return nil, nil, err
	}

	logger.ExitMethod("authService.Login", "userID", user.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, user, nil
}

// Refresh re-issues an access token. The role comes from the current user
// record, not the old token, so a role change takes effect on next refresh.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || !user.Active {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
}

func (s *authService) Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
