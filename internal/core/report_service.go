package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// ErrReportNotFound is returned when no report exists for an interview,
// including interviews still in progress.
var ErrReportNotFound = errors.New("report not found")

// reportService implements the ReportService interface.
type reportService struct {
	reportRepo db.ReportRepository
}

// NewReportService creates a new ReportService instance.
func NewReportService(rr db.ReportRepository) ReportService {
	return &reportService{reportRepo: rr}
}

// GetByInterviewID returns the report for an interview, owner-only.
func (s *reportService) GetByInterviewID(ctx context.Context, userID, interviewID string) (*models.Report, error) {
	report, err := s.reportRepo.GetByInterviewID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: interview '%s'", ErrReportNotFound, interviewID)
		}
		return nil, fmt.Errorf("failed to get report for interview '%s': %w", interviewID, err)
	}
	if report.OwnerID != userID {
		return nil, fmt.Errorf("%w: report for interview '%s'", ErrForbiddenAccess, interviewID)
	}
	return report, nil
}

// ListByOwner returns all of the caller's reports, newest first.
func (s *reportService) ListByOwner(ctx context.Context, userID string) ([]*models.Report, error) {
	reports, err := s.reportRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for user '%s': %w", userID, err)
	}
	return reports, nil
}
