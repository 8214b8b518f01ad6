package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"go.uber.org/zap"
)

const profileCacheTTL = 10 * time.Minute

func profileCacheKey(userID string) string {
	return "userProfile:" + userID
}

// GetUserByID retrieves a user by ID, serving from the Redis profile cache
// when possible. The cached copy only carries public profile fields; callers
// needing credentials or push tokens go through the repository directly.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if data, err := utils.GetCacheClient().Get(ctx, profileCacheKey(userID)).Result(); err == nil {
		var cached models.User
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return &cached, nil
		}
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	if data, err := json.Marshal(u); err == nil {
		if err := utils.GetCacheClient().Set(ctx, profileCacheKey(userID), data, profileCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache user profile",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return u, nil
}

// SearchByUsername finds a user by exact username, for friend lookups.
func (s *DefaultUserService) SearchByUsername(username string) (*models.User, error) {
	u, err := s.Repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("SearchByUsername: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %q not found", username)
	}
	return u, nil
}

// UpdateProfile applies a whitelisted partial update to the user's profile.
func (s *DefaultUserService) UpdateProfile(userID string, fields map[string]any) (*models.User, error) {
	allowed := map[string]bool{"username": true, "phoneNumber": true, "profileImage": true}
	update := make(map[string]any, len(fields))
	for k, v := range fields {
		if !allowed[k] {
			return nil, fmt.Errorf("field %q cannot be updated", k)
		}
		update[k] = v
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no updatable fields supplied")
	}

	if username, ok := update["username"].(string); ok {
		if !usernamePattern.MatchString(username) {
			return nil, fmt.Errorf("username must be 3-24 characters: letters, digits, underscore")
		}
		if existing, err := s.Repo.GetByUsername(username); err != nil {
			return nil, fmt.Errorf("UpdateProfile: %w", err)
		} else if existing != nil && existing.ID != userID {
			return nil, fmt.Errorf("username already taken")
		}
	}

	if err := s.Repo.SetFields(userID, update); err != nil {
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}
	s.invalidateProfileCache(userID)
	return s.GetUserByID(userID)
}

// UpdateFCMToken stores the push token the browser registered.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if err := s.Repo.SetFields(userID, map[string]any{"fcmToken": token}); err != nil {
		return fmt.Errorf("UpdateFCMToken: %w", err)
	}
	s.invalidateProfileCache(userID)
	return nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	s.invalidateProfileCache(userID)
	return nil
}

func (s *DefaultUserService) invalidateProfileCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetCacheClient().Del(ctx, profileCacheKey(userID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate profile cache",
			zap.String("userID", userID), zap.Error(err))
	}
}
