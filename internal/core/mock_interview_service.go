package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// Custom errors for the MockInterviewService
var (
	ErrInvalidScheduleTime = errors.New("scheduledAt must be a valid RFC 3339 timestamp")
	ErrInvalidDuration     = errors.New("durationMinutes must be positive")
)

// mockInterviewService implements the MockInterviewService interface.
type mockInterviewService struct {
	mockRepo db.MockInterviewRepository
}

// NewMockInterviewService creates a new MockInterviewService instance.
func NewMockInterviewService(mr db.MockInterviewRepository) MockInterviewService {
	return &mockInterviewService{mockRepo: mr}
}

// Schedule creates a new mock-interview session hosted by the caller.
func (s *mockInterviewService) Schedule(ctx context.Context, hostID string, req models.ScheduleMockInterviewRequest) (*models.MockInterview, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheduleTime, req.ScheduledAt)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = models.DefaultMockDurationMinutes
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, req.DurationMinutes)
	}

	mock := &models.MockInterview{
		ID:              uuid.NewString(),
		Host:            hostID,
		Participants:    []string{hostID},
		ScheduledAt:     scheduledAt.UTC(),
		DurationMinutes: duration,
		Status:          models.MockStatusScheduled,
		MeetingLink:     req.MeetingLink,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.mockRepo.Create(ctx, mock); err != nil {
		return nil, fmt.Errorf("failed to schedule mock interview: %w", err)
	}
	return mock, nil
}

// List returns mock interviews ordered by scheduled time ascending.
func (s *mockInterviewService) List(ctx context.Context, upcomingOnly bool) ([]*models.MockInterview, error) {
	mocks, err := s.mockRepo.List(ctx, upcomingOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list mock interviews: %w", err)
	}
	return mocks, nil
}
