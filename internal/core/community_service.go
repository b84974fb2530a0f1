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

// ErrQuestionNotFound is returned when a community question does not exist.
var ErrQuestionNotFound = errors.New("community question not found")

// communityService implements the CommunityService interface.
type communityService struct {
	communityRepo db.CommunityRepository
}

// NewCommunityService creates a new CommunityService instance.
func NewCommunityService(cr db.CommunityRepository) CommunityService {
	return &communityService{communityRepo: cr}
}

// List returns all community questions, newest first.
func (s *communityService) List(ctx context.Context) ([]*models.CommunityQuestion, error) {
	questions, err := s.communityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list community questions: %w", err)
	}
	return questions, nil
}

// Post creates a new community question authored by the caller.
func (s *communityService) Post(ctx context.Context, userID string, req models.PostQuestionRequest) (*models.CommunityQuestion, error) {
	question := &models.CommunityQuestion{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Answers:   []models.CommunityAnswer{},
		CreatedAt: time.Now().UTC(),
	}
	if question.Tags == nil {
		question.Tags = []string{}
	}

	if err := s.communityRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to post community question: %w", err)
	}
	return question, nil
}

// Answer appends an answer to an existing question and returns the updated question.
func (s *communityService) Answer(ctx context.Context, userID, questionID string, req models.PostAnswerRequest) (*models.CommunityQuestion, error) {
	answer := models.CommunityAnswer{
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.communityRepo.AppendAnswer(ctx, questionID, answer); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrQuestionNotFound, questionID)
		}
		return nil, fmt.Errorf("failed to answer community question '%s': %w", questionID, err)
	}

	question, err := s.communityRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("answer stored but failed to reload question '%s': %w", questionID, err)
	}
	return question, nil
}
