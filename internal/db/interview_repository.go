package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

const (
	interviewsCollection = "interviews"
	answersSubcollection = "answers"
)

// firestoreInterviewRepository implements the InterviewRepository interface using Firestore.
// Submitted answers are stored in an "answers" subcollection under the interview
// document, keyed by the question index.
type firestoreInterviewRepository struct {
	client *firestore.Client
}

// NewFirestoreInterviewRepository creates a new instance of firestoreInterviewRepository.
func NewFirestoreInterviewRepository(client *firestore.Client) InterviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for InterviewRepository.")
	}
	return &firestoreInterviewRepository{client: client}
}

// Create adds a new interview document using the pre-generated interview.ID.
func (r *firestoreInterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	if interview.ID == "" {
		return errors.New("interview ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(interviewsCollection).Doc(interview.ID).Create(ctx, interview)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("interview with ID '%s' already exists: %w", interview.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create interview with ID '%s': %w", interview.ID, err)
	}
	return nil
}

// GetByID retrieves an interview document by its ID.
func (r *firestoreInterviewRepository) GetByID(ctx context.Context, interviewID string) (*models.Interview, error) {
	if interviewID == "" {
		return nil, errors.New("interviewID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(interviewsCollection).Doc(interviewID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("interview with ID '%s' not found: %w", interviewID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get interview with ID '%s': %w", interviewID, err)
	}

	var interview models.Interview
	if err := docSnap.DataTo(&interview); err != nil {
		return nil, fmt.Errorf("failed to decode interview data for ID '%s': %w", interviewID, err)
	}
	interview.ID = docSnap.Ref.ID

	return &interview, nil
}

// ListByOwner returns the interviews owned by ownerID, newest first.
func (r *firestoreInterviewRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Interview, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(interviewsCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var interviews []*models.Interview
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate interviews for owner '%s': %w", ownerID, err)
		}
		var interview models.Interview
		if err := docSnap.DataTo(&interview); err != nil {
			return nil, fmt.Errorf("failed to decode interview data for ID '%s': %w", docSnap.Ref.ID, err)
		}
		interview.ID = docSnap.Ref.ID
		interviews = append(interviews, &interview)
	}
	return interviews, nil
}

// SetStatus updates only the status field of an interview document.
func (r *firestoreInterviewRepository) SetStatus(ctx context.Context, interviewID, newStatus string) error {
	if interviewID == "" {
		return errors.New("interviewID cannot be empty for SetStatus operation")
	}
	_, err := r.client.Collection(interviewsCollection).Doc(interviewID).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("interview with ID '%s' not found: %w", interviewID, ErrNotFound)
		}
		return fmt.Errorf("failed to update status for interview '%s': %w", interviewID, err)
	}
	return nil
}

// SaveAnswer stores one submitted answer, keyed by question index so a
// duplicate submission overwrites rather than duplicates.
func (r *firestoreInterviewRepository) SaveAnswer(ctx context.Context, answer *models.SubmittedAnswer) error {
	if answer.InterviewID == "" {
		return errors.New("interview ID cannot be empty for SaveAnswer operation")
	}
	docID := strconv.Itoa(answer.QuestionIndex)
	_, err := r.client.Collection(interviewsCollection).
		Doc(answer.InterviewID).
		Collection(answersSubcollection).
		Doc(docID).
		Set(ctx, answer)
	if err != nil {
		return fmt.Errorf("failed to save answer %d for interview '%s': %w", answer.QuestionIndex, answer.InterviewID, err)
	}
	return nil
}

// ListAnswers returns all stored answers for an interview ordered by question index.
func (r *firestoreInterviewRepository) ListAnswers(ctx context.Context, interviewID string) ([]*models.SubmittedAnswer, error) {
	if interviewID == "" {
		return nil, errors.New("interviewID cannot be empty for ListAnswers operation")
	}
	iter := r.client.Collection(interviewsCollection).
		Doc(interviewID).
		Collection(answersSubcollection).
		OrderBy("questionIndex", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var answers []*models.SubmittedAnswer
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate answers for interview '%s': %w", interviewID, err)
		}
		var answer models.SubmittedAnswer
		if err := docSnap.DataTo(&answer); err != nil {
			return nil, fmt.Errorf("failed to decode answer data for interview '%s': %w", interviewID, err)
		}
		answers = append(answers, &answer)
	}
	return answers, nil
}
