package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

const mockInterviewsCollection = "mock_interviews"

// firestoreMockInterviewRepository implements the MockInterviewRepository
// interface using Firestore.
type firestoreMockInterviewRepository struct {
	client *firestore.Client
}

// NewFirestoreMockInterviewRepository creates a new instance of firestoreMockInterviewRepository.
func NewFirestoreMockInterviewRepository(client *firestore.Client) MockInterviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MockInterviewRepository.")
	}
	return &firestoreMockInterviewRepository{client: client}
}

// Create adds a new mock-interview document using the pre-generated mock.ID.
func (r *firestoreMockInterviewRepository) Create(ctx context.Context, mock *models.MockInterview) error {
	if mock.ID == "" {
		return errors.New("mock interview ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(mockInterviewsCollection).Doc(mock.ID).Create(ctx, mock)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("mock interview with ID '%s' already exists: %w", mock.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create mock interview with ID '%s': %w", mock.ID, err)
	}
	return nil
}

// List returns mock interviews ordered by scheduled time ascending,
// optionally restricted to those scheduled from now on.
func (r *firestoreMockInterviewRepository) List(ctx context.Context, upcomingOnly bool) ([]*models.MockInterview, error) {
	query := r.client.Collection(mockInterviewsCollection).
		OrderBy("scheduledAt", firestore.Asc)
	if upcomingOnly {
		query = r.client.Collection(mockInterviewsCollection).
			Where("scheduledAt", ">=", time.Now().UTC()).
			OrderBy("scheduledAt", firestore.Asc)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var mocks []*models.MockInterview
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate mock interviews: %w", err)
		}
		var mock models.MockInterview
		if err := docSnap.DataTo(&mock); err != nil {
			return nil, fmt.Errorf("failed to decode mock interview data for ID '%s': %w", docSnap.Ref.ID, err)
		}
		mock.ID = docSnap.Ref.ID
		mocks = append(mocks, &mock)
	}
	return mocks, nil
}
