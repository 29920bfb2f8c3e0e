package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webforge_backend/internal/auth/password"
	"webforge_backend/internal/auth/repository"
	"webforge_backend/internal/auth/token"
	"webforge_backend/internal/auth/transport"
	"webforge_backend/platform/apperr"
	"webforge_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors for credential and token failures
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

const refreshTokenSize = 32

// Service implements staff authentication
type Service struct {
	repo *repository.Repository
	cfg  config.AuthServiceConfig
}

// New creates a new auth service
func New(repo *repository.Repository, cfg config.AuthServiceConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Login verifies credentials and issues a token pair
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (*transport.TokenPairResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token and issues a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*transport.TokenPairResponse, error) {
	hash := token.HashSHA256(refreshToken)

	userID, expiresAt, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	// Rotate regardless of outcome; a presented token is single use
	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil {
		return nil, err
	}

	if time.Now().After(expiresAt) {
		return nil, ErrTokenExpired
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.repo.RevokeRefreshToken(ctx, token.HashSHA256(refreshToken))
}

// Me returns the profile of the authenticated user
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*transport.MeResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	return &transport.MeResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       roles,
	}, nil
}

func (s *Service) issueTokens(ctx context.Context, user *repository.User) (*transport.TokenPairResponse, error) {
	accessTTL := s.cfg.GetAccessTokenTTL()

	accessToken, err := s.signJWT(user, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := token.GenerateRandomToken(refreshTokenSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.GetRefreshTokenTTL())
	if err := s.repo.CreateRefreshToken(ctx, user.ID, token.HashSHA256(refreshToken), expiresAt); err != nil {
		return nil, err
	}

	return &transport.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *Service) signJWT(user *repository.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"type":  "access",
		"roles": user.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
