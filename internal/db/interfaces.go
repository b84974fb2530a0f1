package db

import (
	"context"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
	ListTopByPoints(ctx context.Context, limit int) ([]*models.User, error)
}

// InterviewRepository defines the interface for interview storage operations.
type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, interviewID string) (*models.Interview, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Interview, error)
	SetStatus(ctx context.Context, interviewID, status string) error
	// SaveAnswer stores one submitted answer under the interview. Writing the
	// same question index twice overwrites in place, keeping submission idempotent
	// at the storage level as well.
	SaveAnswer(ctx context.Context, answer *models.SubmittedAnswer) error
	ListAnswers(ctx context.Context, interviewID string) ([]*models.SubmittedAnswer, error)
}

// ReportRepository defines the interface for report storage operations.
type ReportRepository interface {
	Set(ctx context.Context, report *models.Report) error
	GetByInterviewID(ctx context.Context, interviewID string) (*models.Report, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Report, error)
}

// MockInterviewRepository defines the interface for mock-interview storage operations.
type MockInterviewRepository interface {
	Create(ctx context.Context, mock *models.MockInterview) error
	// List returns sessions ordered by scheduled time ascending. When
	// upcomingOnly is set, sessions scheduled before now are excluded.
	List(ctx context.Context, upcomingOnly bool) ([]*models.MockInterview, error)
}

// CommunityRepository defines the interface for community Q&A storage operations.
type CommunityRepository interface {
	Create(ctx context.Context, question *models.CommunityQuestion) error
	GetByID(ctx context.Context, questionID string) (*models.CommunityQuestion, error)
	// List returns questions ordered by creation time descending.
	List(ctx context.Context) ([]*models.CommunityQuestion, error)
	AppendAnswer(ctx context.Context, questionID string, answer models.CommunityAnswer) error
}

// ContactRepository defines the interface for contact-message storage operations.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}
