package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/cache"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = time.Minute

	completionBasePoints = 10
	firstCompletionBadge = "Interview Rookie"
)

// userService implements the UserService interface.
type userService struct {
	userRepo        db.UserRepository
	identityDeleter IdentityDeleter
	cache           cache.Cache // optional; leaderboard reads fall through when nil
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, identityDeleter IdentityDeleter, c cache.Cache) UserService {
	return &userService{
		userRepo:        userRepo,
		identityDeleter: identityDeleter,
		cache:           c,
	}
}

// GetOrCreate retrieves a user by ID, creating a basic-tier profile on first
// registration. Registering the same identity twice returns the same record.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, name string) (*models.User, bool, error) {
	if s.userRepo == nil {
		return nil, false, errors.New("UserRepository not initialized in UserService")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			if name == "" {
				name = "Anonymous"
			}
			now := time.Now().UTC()
			newUser := &models.User{
				ID:        userID,
				Email:     email,
				Name:      name,
				Tier:      models.TierBasic,
				Badges:    []string{},
				Bookmarks: []string{},
				CreatedAt: now,
				UpdatedAt: now,
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				// A concurrent registration may have won the race; fall back to the
				// stored record so both calls return the same user.
				if errors.Is(createErr, db.ErrAlreadyExists) {
					existing, getErr := s.userRepo.GetByID(ctx, userID)
					if getErr == nil {
						return existing, false, nil
					}
				}
				return nil, false, fmt.Errorf("failed to create user (id: %s) after not found: %w", userID, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}

	return user, false, nil
}

// GetByID retrieves a user by their ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("UserRepository not initialized in UserService")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies the provided name/avatar changes to the caller's own profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, err)
	}
	return user, nil
}

// Delete removes the user's profile and the upstream Firebase identity.
// The local profile is removed first so a half-failed delete can be retried.
func (s *userService) Delete(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return fmt.Errorf("failed to delete user '%s': %w", userID, err)
	}
	if s.identityDeleter != nil {
		if err := s.identityDeleter.DeleteUser(ctx, userID); err != nil {
			return fmt.Errorf("profile deleted but failed to delete identity-provider record for '%s': %w", userID, err)
		}
	}
	s.invalidateLeaderboard(ctx)
	return nil
}

// AddBookmark appends refID to the user's bookmarks if not already present.
func (s *userService) AddBookmark(ctx context.Context, userID, refID string) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, b := range user.Bookmarks {
		if b == refID {
			return user, nil // already bookmarked
		}
	}
	user.Bookmarks = append(user.Bookmarks, refID)
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to add bookmark for user '%s': %w", userID, err)
	}
	return user, nil
}

// RemoveBookmark removes refID from the user's bookmarks if present.
func (s *userService) RemoveBookmark(ctx context.Context, userID, refID string) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := user.Bookmarks[:0]
	removed := false
	for _, b := range user.Bookmarks {
		if b == refID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return user, nil
	}
	user.Bookmarks = kept
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to remove bookmark for user '%s': %w", userID, err)
	}
	return user, nil
}

// Leaderboard returns the top users by points, serving from the cache when possible.
func (s *userService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	cacheKey := fmt.Sprintf("%s:%d", leaderboardCacheKey, limit)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var cached []*models.User
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			// A corrupt cache entry is dropped and recomputed below.
			_ = s.cache.Delete(ctx, cacheKey)
		}
	}

	users, err := s.userRepo.ListTopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard users: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(users); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, leaderboardCacheTTL)
		}
	}
	return users, nil
}

// AwardCompletion applies streak, points and the first-completion badge.
func (s *userService) AwardCompletion(ctx context.Context, userID string, overallScore int) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Streak++
	user.LeaderboardPoints += completionBasePoints + overallScore/10

	hasBadge := false
	for _, b := range user.Badges {
		if b == firstCompletionBadge {
			hasBadge = true
			break
		}
	}
	if !hasBadge {
		user.Badges = append(user.Badges, firstCompletionBadge)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to award completion to user '%s': %w", userID, err)
	}
	s.invalidateLeaderboard(ctx)
	return nil
}

func (s *userService) invalidateLeaderboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Only the default page is actively invalidated; other limits age out
	// with the one-minute TTL.
	_ = s.cache.Delete(ctx, fmt.Sprintf("%s:%d", leaderboardCacheKey, 10))
}
