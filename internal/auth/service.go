// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type Service struct {
	repo Repository
	jwt  *JWTManager
}

func NewService(repo Repository, jwt *JWTManager) *Service {
	return &Service{
		repo: repo,
		jwt:  jwt,
	}
}

func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*User, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		UserType:     req.UserType,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		// best-effort params upgrade; login proceeds either way
		if updErr := s.repo.UpdatePasswordHash(ctx, user.ID, newHash); updErr == nil {
			user.PasswordHash = newHash
		}
	}

	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:   user.ID,
		UserType: user.UserType,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &LoginResponse{
		Message:     "Login successful",
		UserID:      user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.config.AccessTokenExpire.Seconds()),
	}, nil
}
