package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 30 * 24 * time.Hour

// Register validates the signup form, creates the user, and issues a token.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	if existing, err := s.Repo.GetByUsername(req.Username); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("Register: failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}

	return s.issueToken(u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(u)
}

// RevokeAuthToken clears the stored token hash and the auth cache entry, so
// the current token stops resolving to a user.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("RevokeAuthToken: %w", err)
	}
	if u == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	oldHash := u.TokenHash
	if err := s.Repo.SetFields(userID, map[string]any{"tokenHash": ""}); err != nil {
		return fmt.Errorf("RevokeAuthToken: %w", err)
	}

	if oldHash != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := utils.GetAuthCacheClient().Del(ctx, authCacheKey(oldHash)).Err(); err != nil {
			utils.GetLogger().Warn("failed to drop auth cache entry", zap.Error(err))
		}
	}
	return nil
}

// issueToken signs a JWT, stores its hash on the user document, and caches the
// hash->userID mapping so the auth middleware can skip the DB on the hot path.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetFields(u.ID, map[string]any{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, authCacheKey(tokenHash), u.ID, tokenLifetime).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.Error(err))
	}

	return &AuthResponse{
		ID:           u.ID,
		Token:        token,
		Username:     u.Username,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		ProfileImage: u.ProfileImage,
	}, nil
}

func authCacheKey(tokenHash string) string {
	return "authToken:" + tokenHash
}
