package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gatepass/internal/auth"
	"gatepass/internal/clock"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, name, phone string, flatNumber *string, password string) (*model.User, error)
	Login(ctx context.Context, phone, password string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	// Logout drops the refresh token and, when access is non-nil,
	// blacklists the presented access token until it expires.
	Logout(ctx context.Context, refreshToken string, access *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	clock      clock.Clock
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, clk clock.Clock, logger *slog.Logger) AuthService {
	if clk == nil {
		clk = clock.Real()
	}
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		clock:      clk,
		logger:     loggerOrDefault(logger),
	}
}

// Register creates a resident account. Admin accounts are only created by
// the seeder.
func (s *authService) Register(ctx context.Context, name, phone string, flatNumber *string, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	if phone == "" {
		return nil, apperrors.NewValidationError("phone", "is required")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "is required")
	}

	existing, err := s.userRepo.FindByPhone(ctx, phone)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("find user by phone", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if flatNumber != nil {
		trimmed := strings.TrimSpace(*flatNumber)
		if trimmed == "" {
			flatNumber = nil
		} else {
			flatNumber = &trimmed
		}
	}

	user := &model.User{
		Name:         name,
		Phone:        phone,
		FlatNumber:   flatNumber,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleResident,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.NewStorageError("create user", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, phone, password string) (accessToken, refreshToken string, user *model.User, err error) {
	user, err = s.userRepo.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.ErrorContext(ctx, "login lookup failed", "error", err)
		}
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	_, accessToken, err = s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	session := auth.RefreshSession{UserID: user.ID, Phone: user.Phone, Role: user.Role}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, session, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" || claims.Kind != auth.KindRefresh {
		return "", apperrors.ErrInvalidRefreshToken
	}

	session, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if session.UserID != claims.UserID || session.Phone != claims.Phone {
		return "", apperrors.ErrInvalidRefreshToken
	}

	user := &model.User{ID: session.UserID, Phone: session.Phone, Role: session.Role}
	_, accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token and blacklists the access token.
func (s *authService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	if access != nil && access.ID != "" && access.ExpiresAt != nil {
		ttl := access.ExpiresAt.Time.Sub(s.clock.Now())
		if ttl > 0 {
			if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, ttl); err != nil {
				return fmt.Errorf("blacklist access token: %w", err)
			}
		}
	}
	return nil
}
