package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil, nil)
	ctx := context.Background()

	first, created, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.TierBasic, first.Tier)
	assert.NotNil(t, first.Badges)
	assert.NotNil(t, first.Bookmarks)

	second, created, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.users, 1)
}

func TestGetOrCreateDefaultsName(t *testing.T) {
	service := NewUserService(newFakeUserRepo(), nil, nil)

	user, created, err := service.GetOrCreate(context.Background(), "uid-2", "b@example.com", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Anonymous", user.Name)
}

func TestGetByIDUnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepo(), nil, nil)

	_, err := service.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil, nil)
	ctx := context.Background()

	_, _, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)

	newName := "Ada L."
	user, err := service.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
	assert.Empty(t, user.Avatar)

	avatar := "https://cdn.example.com/ada.png"
	user, err = service.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
	assert.Equal(t, avatar, user.Avatar)
}

func TestDeleteRemovesProfileAndIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	deleter := &fakeIdentityDeleter{}
	service := NewUserService(repo, deleter, nil)
	ctx := context.Background()

	_, _, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "uid-1"))
	assert.Empty(t, repo.users)
	assert.Equal(t, []string{"uid-1"}, deleter.deleted)

	assert.ErrorIs(t, service.Delete(ctx, "uid-1"), ErrUserNotFound)
}

func TestBookmarksAddAndRemove(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil, nil)
	ctx := context.Background()

	_, _, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)

	user, err := service.AddBookmark(ctx, "uid-1", "res-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"res-001"}, user.Bookmarks)

	// Adding the same bookmark twice keeps a single entry.
	user, err = service.AddBookmark(ctx, "uid-1", "res-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"res-001"}, user.Bookmarks)

	user, err = service.RemoveBookmark(ctx, "uid-1", "res-001")
	require.NoError(t, err)
	assert.Empty(t, user.Bookmarks)

	// Removing an absent bookmark is a no-op.
	user, err = service.RemoveBookmark(ctx, "uid-1", "res-001")
	require.NoError(t, err)
	assert.Empty(t, user.Bookmarks)
}

func TestAwardCompletion(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil, nil)
	ctx := context.Background()

	_, _, err := service.GetOrCreate(ctx, "uid-1", "a@example.com", "Ada")
	require.NoError(t, err)

	require.NoError(t, service.AwardCompletion(ctx, "uid-1", 80))
	user := repo.users["uid-1"]
	assert.Equal(t, 1, user.Streak)
	assert.Equal(t, 18, user.LeaderboardPoints) // 10 base + 80/10
	assert.Equal(t, []string{"Interview Rookie"}, user.Badges)

	// Second completion: streak and points grow, badge stays single.
	require.NoError(t, service.AwardCompletion(ctx, "uid-1", 100))
	user = repo.users["uid-1"]
	assert.Equal(t, 2, user.Streak)
	assert.Equal(t, 38, user.LeaderboardPoints)
	assert.Equal(t, []string{"Interview Rookie"}, user.Badges)
}

func TestLeaderboardOrderAndCache(t *testing.T) {
	repo := newFakeUserRepo()
	c := newMemCache()
	service := NewUserService(repo, nil, c)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		repo.users[fmt.Sprintf("uid-%d", i)] = &models.User{
			ID:                fmt.Sprintf("uid-%d", i),
			Name:              fmt.Sprintf("User %d", i),
			Tier:              models.TierBasic,
			LeaderboardPoints: i * 10,
		}
	}

	top, err := service.Leaderboard(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "uid-5", top[0].ID)
	assert.Equal(t, "uid-4", top[1].ID)
	assert.Equal(t, "uid-3", top[2].ID)

	// A repo change is invisible until the cached page ages out.
	repo.users["uid-1"].LeaderboardPoints = 1000
	cached, err := service.Leaderboard(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "uid-5", cached[0].ID)
}

func TestLeaderboardClampsLimit(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil, nil)

	repo.users["uid-1"] = &models.User{ID: "uid-1", LeaderboardPoints: 5}

	top, err := service.Leaderboard(context.Background(), -3)
	require.NoError(t, err)
	assert.Len(t, top, 1) // default limit of 10 applied, one user stored
}
