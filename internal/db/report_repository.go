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

const reportsCollection = "reports"

// firestoreReportRepository implements the ReportRepository interface using Firestore.
// The interview ID is used as the report document ID, so regenerating a report
// for the same interview overwrites in place.
type firestoreReportRepository struct {
	client *firestore.Client
}

// NewFirestoreReportRepository creates a new instance of firestoreReportRepository.
func NewFirestoreReportRepository(client *firestore.Client) ReportRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReportRepository.")
	}
	return &firestoreReportRepository{client: client}
}

// Set stores (or overwrites) the report for an interview.
func (r *firestoreReportRepository) Set(ctx context.Context, report *models.Report) error {
	if report.InterviewID == "" {
		return errors.New("report interview ID cannot be empty for Set operation")
	}
	_, err := r.client.Collection(reportsCollection).Doc(report.InterviewID).Set(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to set report for interview '%s': %w", report.InterviewID, err)
	}
	return nil
}

// GetByInterviewID retrieves the report for an interview.
func (r *firestoreReportRepository) GetByInterviewID(ctx context.Context, interviewID string) (*models.Report, error) {
	if interviewID == "" {
		return nil, errors.New("interviewID cannot be empty for GetByInterviewID operation")
	}
	docSnap, err := r.client.Collection(reportsCollection).Doc(interviewID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("report for interview '%s' not found: %w", interviewID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report for interview '%s': %w", interviewID, err)
	}

	var report models.Report
	if err := docSnap.DataTo(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report data for interview '%s': %w", interviewID, err)
	}
	report.InterviewID = docSnap.Ref.ID

	return &report, nil
}

// ListByOwner returns all reports belonging to ownerID, newest first.
func (r *firestoreReportRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Report, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(reportsCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("completedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reports []*models.Report
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reports for owner '%s': %w", ownerID, err)
		}
		var report models.Report
		if err := docSnap.DataTo(&report); err != nil {
			return nil, fmt.Errorf("failed to decode report data for ID '%s': %w", docSnap.Ref.ID, err)
		}
		report.InterviewID = docSnap.Ref.ID
		reports = append(reports, &report)
	}
	return reports, nil
}
