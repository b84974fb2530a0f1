package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

func TestScheduleMockInterview(t *testing.T) {
	repo := &fakeMockRepo{}
	service := NewMockInterviewService(repo)

	when := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	mock, err := service.Schedule(context.Background(), "host-1", models.ScheduleMockInterviewRequest{
		ScheduledAt: when,
		MeetingLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "host-1", mock.Host)
	assert.Equal(t, []string{"host-1"}, mock.Participants)
	assert.Equal(t, models.MockStatusScheduled, mock.Status)
	assert.Equal(t, models.DefaultMockDurationMinutes, mock.DurationMinutes)
	assert.NotEmpty(t, mock.ID)
}

func TestScheduleRejectsBadInput(t *testing.T) {
	service := NewMockInterviewService(&fakeMockRepo{})
	ctx := context.Background()

	_, err := service.Schedule(ctx, "host-1", models.ScheduleMockInterviewRequest{ScheduledAt: "tomorrow at noon"})
	assert.ErrorIs(t, err, ErrInvalidScheduleTime)

	_, err = service.Schedule(ctx, "host-1", models.ScheduleMockInterviewRequest{
		ScheduledAt:     time.Now().Add(time.Hour).Format(time.RFC3339),
		DurationMinutes: -15,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestListUpcomingExcludesPastSessions(t *testing.T) {
	repo := &fakeMockRepo{}
	service := NewMockInterviewService(repo)
	ctx := context.Background()

	past := &models.MockInterview{ID: "past", ScheduledAt: time.Now().Add(-2 * time.Hour).UTC()}
	soon := &models.MockInterview{ID: "soon", ScheduledAt: time.Now().Add(time.Hour).UTC()}
	later := &models.MockInterview{ID: "later", ScheduledAt: time.Now().Add(4 * time.Hour).UTC()}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, past))
	require.NoError(t, repo.Create(ctx, soon))

	all, err := service.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "past", all[0].ID) // ascending by scheduled time

	upcoming, err := service.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "later", upcoming[1].ID)
}
