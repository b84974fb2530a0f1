package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

const communityCollection = "community_questions"

// firestoreCommunityRepository implements the CommunityRepository interface
// using Firestore. Answers are embedded in the question document, mirroring
// the nested shape the API exposes.
type firestoreCommunityRepository struct {
	client *firestore.Client
}

// NewFirestoreCommunityRepository creates a new instance of firestoreCommunityRepository.
func NewFirestoreCommunityRepository(client *firestore.Client) CommunityRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CommunityRepository.")
	}
	return &firestoreCommunityRepository{client: client}
}

// Create adds a new community question document using the pre-generated question.ID.
func (r *firestoreCommunityRepository) Create(ctx context.Context, question *models.CommunityQuestion) error {
	if question.ID == "" {
		return errors.New("question ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(communityCollection).Doc(question.ID).Create(ctx, question)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("community question with ID '%s' already exists: %w", question.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create community question with ID '%s': %w", question.ID, err)
	}
	return nil
}

// GetByID retrieves a community question document by its ID.
func (r *firestoreCommunityRepository) GetByID(ctx context.Context, questionID string) (*models.CommunityQuestion, error) {
	if questionID == "" {
		return nil, errors.New("questionID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(communityCollection).Doc(questionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("community question with ID '%s' not found: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get community question with ID '%s': %w", questionID, err)
	}

	var question models.CommunityQuestion
	if err := docSnap.DataTo(&question); err != nil {
		return nil, fmt.Errorf("failed to decode community question data for ID '%s': %w", questionID, err)
	}
	question.ID = docSnap.Ref.ID

	return &question, nil
}

// List returns all community questions, newest first.
func (r *firestoreCommunityRepository) List(ctx context.Context) ([]*models.CommunityQuestion, error) {
	iter := r.client.Collection(communityCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var questions []*models.CommunityQuestion
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate community questions: %w", err)
		}
		var question models.CommunityQuestion
		if err := docSnap.DataTo(&question); err != nil {
			return nil, fmt.Errorf("failed to decode community question data for ID '%s': %w", docSnap.Ref.ID, err)
		}
		question.ID = docSnap.Ref.ID
		questions = append(questions, &question)
	}
	return questions, nil
}

// AppendAnswer atomically appends one answer to the embedded answers array.
func (r *firestoreCommunityRepository) AppendAnswer(ctx context.Context, questionID string, answer models.CommunityAnswer) error {
	if questionID == "" {
		return errors.New("questionID cannot be empty for AppendAnswer operation")
	}
	_, err := r.client.Collection(communityCollection).Doc(questionID).Update(ctx, []firestore.Update{
		{Path: "answers", Value: firestore.ArrayUnion(answer)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("community question with ID '%s' not found: %w", questionID, ErrNotFound)
		}
		return fmt.Errorf("failed to append answer to community question '%s': %w", questionID, err)
	}
	return nil
}
