package models

import "time"

// Mock interview statuses.
const (
	MockStatusScheduled = "scheduled"
	MockStatusCompleted = "completed"
	MockStatusCancelled = "cancelled"
)

// DefaultMockDurationMinutes is applied when a schedule request omits the duration.
const DefaultMockDurationMinutes = 30

// MockInterview represents a scheduled peer mock-interview session.
type MockInterview struct {
	ID              string    `json:"id" firestore:"-"` // Document ID
	Host            string    `json:"host" firestore:"host"` // user ID
	Participants    []string  `json:"participants" firestore:"participants"` // user IDs
	ScheduledAt     time.Time `json:"scheduledAt" firestore:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes" firestore:"durationMinutes"`
	Status          string    `json:"status" firestore:"status"`
	MeetingLink     string    `json:"meetingLink,omitempty" firestore:"meetingLink,omitempty"`
	Notes           string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}
