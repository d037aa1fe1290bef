package repository

import (
	"context"

	"dhi-workshop/internal/domain"
)

// ScanRepository defines methods for scan summary data access.
type ScanRepository interface {
	Create(ctx context.Context, summary *domain.ScanSummary) error
	Get(ctx context.Context, id string) (*domain.ScanSummary, error)
	LatestForImage(ctx context.Context, image string) (*domain.ScanSummary, error)
	List(ctx context.Context, limit int) ([]domain.ScanSummary, error)
}

var _ ScanRepository = (*PostgresScanRepository)(nil)
