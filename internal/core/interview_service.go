package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/messagequeue"
)

// Custom errors for the InterviewService
var (
	ErrInterviewNotFound      = errors.New("interview not found")
	ErrForbiddenAccess        = errors.New("user does not have permission for this action on the interview")
	ErrInterviewLimitReached  = errors.New("interview limit reached for the current tier")
	ErrSessionNotFound        = errors.New("interview session not found or expired")
	ErrSessionCompleted       = errors.New("interview session is already completed")
	ErrOutOfOrderAnswer       = errors.New("submitted question index does not match session progress")
	ErrEmptyAnswer            = errors.New("answer cannot be empty")
)

// interviewService implements the InterviewService interface.
type interviewService struct {
	interviewRepo db.InterviewRepository
	reportRepo    db.ReportRepository
	sessions      db.SessionStore
	userService   UserService
	mq            messagequeue.MessageQueue // optional
}

// NewInterviewService creates a new InterviewService instance.
func NewInterviewService(
	ir db.InterviewRepository,
	rr db.ReportRepository,
	ss db.SessionStore,
	us UserService,
	mq messagequeue.MessageQueue,
) InterviewService {
	return &interviewService{
		interviewRepo: ir,
		reportRepo:    rr,
		sessions:      ss,
		userService:   us,
		mq:            mq,
	}
}

// checkInterviewLimit enforces how many interviews a tier may hold.
func (s *interviewService) checkInterviewLimit(tier string, currentCount int) error {
	limits := map[string]int{
		models.TierBasic:    3,
		models.TierPro:      25,
		models.TierUltimate: 200,
	}
	limit, ok := limits[tier]
	if !ok {
		limit = limits[models.TierBasic]
	}
	if currentCount >= limit {
		return fmt.Errorf("%w: tier '%s' allows %d interview(s), current count %d", ErrInterviewLimitReached, tier, limit, currentCount)
	}
	return nil
}

// Setup generates questions for a new interview, persists it, and opens its
// server-side session at index 0.
func (s *interviewService) Setup(ctx context.Context, ownerID string, req models.SetupInterviewRequest, resumeText string) (*models.Interview, error) {
	if s.interviewRepo == nil || s.sessions == nil || s.userService == nil {
		return nil, errors.New("interviewService: component not initialized")
	}

	user, err := s.userService.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.interviewRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count interviews for user '%s': %w", ownerID, err)
	}
	if err := s.checkInterviewLimit(user.Tier, len(existing)); err != nil {
		return nil, err
	}

	questions := generateQuestions(req)
	interview := &models.Interview{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Name:            req.InterviewName,
		Role:            req.Role,
		InterviewType:   req.InterviewType,
		ExperienceLevel: req.ExperienceLevel,
		CompanyName:     req.CompanyName,
		FocusAt:         req.FocusAt,
		NumQuestions:    len(questions),
		ResumeText:      resumeText,
		Questions:       questions,
		Status:          models.InterviewInProgress,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	session := &models.Session{
		InterviewID: interview.ID,
		UserID:      ownerID,
		NextIndex:   0,
		Total:       len(questions),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("interview created but failed to open session for '%s': %w", interview.ID, err)
	}

	return interview, nil
}

// GetByID returns the interview and its current session state. A nil session
// is returned when the session has expired or the interview is completed and
// its session evicted.
func (s *interviewService) GetByID(ctx context.Context, userID, interviewID string) (*models.Interview, *models.Session, error) {
	interview, err := s.getOwnedInterview(ctx, userID, interviewID)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.Get(ctx, interviewID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return interview, nil, nil
		}
		return nil, nil, err
	}
	return interview, session, nil
}

// ListByOwner returns the caller's interviews, newest first.
func (s *interviewService) ListByOwner(ctx context.Context, userID string) ([]*models.Interview, error) {
	interviews, err := s.interviewRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews for user '%s': %w", userID, err)
	}
	return interviews, nil
}

// SubmitAnswer accepts one answer for the question the server-side cursor
// expects next. Re-submitting an already-answered index is an idempotent
// no-op; submitting any later index is rejected.
func (s *interviewService) SubmitAnswer(ctx context.Context, userID, interviewID string, questionIndex int, answer string) (*SubmitResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrEmptyAnswer
	}

	interview, err := s.getOwnedInterview(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, interviewID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: interview '%s'", ErrSessionNotFound, interviewID)
		}
		return nil, err
	}
	if session.Completed {
		return nil, fmt.Errorf("%w: interview '%s'", ErrSessionCompleted, interviewID)
	}

	switch {
	case questionIndex < session.NextIndex:
		// Already answered; a rapid double-submit lands here once the first
		// submission advanced the cursor.
		return &SubmitResult{Session: session, Duplicate: true, NextQuestion: s.nextQuestion(interview, session)}, nil
	case questionIndex > session.NextIndex:
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrOutOfOrderAnswer, questionIndex, session.NextIndex)
	}

	reserved, err := s.sessions.ReserveAnswer(ctx, interviewID, questionIndex)
	if err != nil {
		return nil, err
	}
	if !reserved {
		// A concurrent submit for the same index won the reservation.
		return &SubmitResult{Session: session, Duplicate: true, NextQuestion: s.nextQuestion(interview, session)}, nil
	}

	submitted := &models.SubmittedAnswer{
		InterviewID:   interviewID,
		QuestionIndex: questionIndex,
		Answer:        answer,
		SubmittedAt:   time.Now().UTC(),
	}
	if err := s.interviewRepo.SaveAnswer(ctx, submitted); err != nil {
		// Let the client retry the same index.
		_ = s.sessions.ReleaseAnswer(ctx, interviewID, questionIndex)
		return nil, fmt.Errorf("failed to save answer %d for interview '%s': %w", questionIndex, interviewID, err)
	}

	session.NextIndex = questionIndex + 1
	if session.NextIndex >= session.Total {
		session.Completed = true
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("answer saved but failed to advance session for '%s': %w", interviewID, err)
	}

	result := &SubmitResult{Session: session, Completed: session.Completed}
	if !session.Completed {
		result.NextQuestion = s.nextQuestion(interview, session)
		return result, nil
	}

	report, err := s.completeInterview(ctx, interview)
	if err != nil {
		return nil, err
	}
	result.Report = report
	return result, nil
}

// completeInterview finalizes a session: marks the interview completed,
// builds and stores the report, applies gamification and publishes the
// completion event.
func (s *interviewService) completeInterview(ctx context.Context, interview *models.Interview) (*models.Report, error) {
	if err := s.interviewRepo.SetStatus(ctx, interview.ID, models.InterviewCompleted); err != nil {
		return nil, fmt.Errorf("failed to mark interview '%s' completed: %w", interview.ID, err)
	}

	answers, err := s.interviewRepo.ListAnswers(ctx, interview.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for report of interview '%s': %w", interview.ID, err)
	}

	report := buildReport(interview, answers)
	if s.reportRepo != nil {
		if err := s.reportRepo.Set(ctx, report); err != nil {
			return nil, fmt.Errorf("failed to store report for interview '%s': %w", interview.ID, err)
		}
	}

	if err := s.userService.AwardCompletion(ctx, interview.OwnerID, report.OverallScore); err != nil {
		return nil, fmt.Errorf("report stored but failed to award completion for '%s': %w", interview.OwnerID, err)
	}

	publishEvent(s.mq, QueueInterviewCompleted, InterviewCompletedEvent{
		InterviewID:  interview.ID,
		UserID:       interview.OwnerID,
		OverallScore: report.OverallScore,
		CompletedAt:  report.CompletedAt,
	})
	return report, nil
}

func (s *interviewService) nextQuestion(interview *models.Interview, session *models.Session) *models.Question {
	if session.Completed || session.NextIndex >= len(interview.Questions) {
		return nil
	}
	q := interview.Questions[session.NextIndex]
	return &q
}

func (s *interviewService) getOwnedInterview(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrInterviewNotFound, interviewID)
		}
		return nil, fmt.Errorf("failed to get interview '%s': %w", interviewID, err)
	}
	if interview.OwnerID != userID {
		return nil, fmt.Errorf("%w: interview '%s'", ErrForbiddenAccess, interviewID)
	}
	return interview, nil
}
