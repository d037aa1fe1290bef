package service

import (
	"context"

	"dhi-workshop/internal/domain"
)

// ReportServiceInterface defines the interface for scan report operations.
// Used for dependency injection and mocking in tests.
type ReportServiceInterface interface {
	// Record stores a scan summary.
	Record(ctx context.Context, summary *domain.ScanSummary) error
	// GetScan retrieves a scan summary by ID.
	GetScan(ctx context.Context, id string) (*domain.ScanSummary, error)
	// ListScans returns recent scan summaries, newest first.
	ListScans(ctx context.Context, limit int) ([]domain.ScanSummary, error)
	// Compare contrasts the latest scans of two images.
	Compare(ctx context.Context, baselineImage, candidateImage string) (*domain.Comparison, error)
}

var _ ReportServiceInterface = (*ReportService)(nil)
