package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dhi-workshop/internal/domain"
	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/repository"
)

const (
	// DefaultListLimit is the page size when none is requested.
	DefaultListLimit = 20
	// MaxListLimit caps the page size.
	MaxListLimit = 100
)

// ErrNotFound is returned when a requested scan summary does not exist.
var ErrNotFound = errors.New("scan summary not found")

// ReportService records and queries scan summaries.
type ReportService struct {
	repo repository.ScanRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repository.ScanRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Record stores a summary produced by the scan CLI.
func (s *ReportService) Record(ctx context.Context, summary *domain.ScanSummary) error {
	if summary.Image == "" {
		return errors.New("summary has no image")
	}
	if err := s.repo.Create(ctx, summary); err != nil {
		return fmt.Errorf("record scan summary: %w", err)
	}

	logger.InfoContext(ctx, "Recorded scan summary",
		slog.String("id", summary.ID),
		slog.String("image", summary.Image),
		slog.Int("total", summary.Total))
	return nil
}

// GetScan retrieves a summary by ID.
func (s *ReportService) GetScan(ctx context.Context, id string) (*domain.ScanSummary, error) {
	summary, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrNotFound
	}
	return summary, nil
}

// ListScans returns recent summaries, newest first. limit is clamped to
// [1, MaxListLimit]; non-positive values select DefaultListLimit.
func (s *ReportService) ListScans(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	return s.repo.List(ctx, ClampLimit(limit))
}

// Compare contrasts the latest summaries of two images.
func (s *ReportService) Compare(ctx context.Context, baselineImage, candidateImage string) (*domain.Comparison, error) {
	baseline, err := s.repo.LatestForImage(ctx, baselineImage)
	if err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, fmt.Errorf("%w: no scan recorded for %s", ErrNotFound, baselineImage)
	}

	candidate, err := s.repo.LatestForImage(ctx, candidateImage)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: no scan recorded for %s", ErrNotFound, candidateImage)
	}

	return domain.Compare(baseline, candidate), nil
}

// ClampLimit normalizes a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
