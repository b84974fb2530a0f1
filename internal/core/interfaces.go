package core

import (
	"context"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/filter"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// GetOrCreate retrieves a user by ID. If the user doesn't exist, it creates
	// a new one with default values. The bool result reports whether a new
	// profile was created.
	GetOrCreate(ctx context.Context, userID, email, name string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	// Delete removes the user profile and the upstream identity-provider record.
	Delete(ctx context.Context, userID string) error
	AddBookmark(ctx context.Context, userID, refID string) (*models.User, error)
	RemoveBookmark(ctx context.Context, userID, refID string) (*models.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
	// AwardCompletion applies the gamification effects of finishing an
	// interview: streak increment, leaderboard points, first-completion badge.
	AwardCompletion(ctx context.Context, userID string, overallScore int) error
}

// IdentityDeleter removes a user record from the upstream identity provider.
// *auth.Client of the Firebase Admin SDK satisfies it.
type IdentityDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

// SubmitResult describes the outcome of one accepted (or deduplicated)
// answer submission.
type SubmitResult struct {
	Session      *models.Session  `json:"session"`
	Completed    bool             `json:"completed"`
	Duplicate    bool             `json:"duplicate"`
	NextQuestion *models.Question `json:"nextQuestion,omitempty"`
	Report       *models.Report   `json:"report,omitempty"`
}

// InterviewService defines the interface for interview-engine operations.
type InterviewService interface {
	// Setup generates the questions for a new interview, persists it and
	// opens its server-side session at index 0.
	Setup(ctx context.Context, ownerID string, req models.SetupInterviewRequest, resumeText string) (*models.Interview, error)
	GetByID(ctx context.Context, userID, interviewID string) (*models.Interview, *models.Session, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Interview, error)
	// SubmitAnswer validates the submitted index against the server-held
	// cursor, stores the answer, advances the cursor and, on the final
	// question, completes the session and builds the report.
	SubmitAnswer(ctx context.Context, userID, interviewID string, questionIndex int, answer string) (*SubmitResult, error)
}

// ReportService defines the interface for report retrieval.
type ReportService interface {
	GetByInterviewID(ctx context.Context, userID, interviewID string) (*models.Report, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Report, error)
}

// MockInterviewService defines the interface for mock-interview scheduling.
type MockInterviewService interface {
	Schedule(ctx context.Context, hostID string, req models.ScheduleMockInterviewRequest) (*models.MockInterview, error)
	List(ctx context.Context, upcomingOnly bool) ([]*models.MockInterview, error)
}

// CommunityService defines the interface for the community Q&A board.
type CommunityService interface {
	List(ctx context.Context) ([]*models.CommunityQuestion, error)
	Post(ctx context.Context, userID string, req models.PostQuestionRequest) (*models.CommunityQuestion, error)
	Answer(ctx context.Context, userID, questionID string, req models.PostAnswerRequest) (*models.CommunityQuestion, error)
}

// ContactService defines the interface for contact-form intake.
type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
}

// ResourceService defines the interface for the learning-resource catalog.
type ResourceService interface {
	List(sel filter.Selection) []models.Resource
}
