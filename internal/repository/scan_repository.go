package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dhi-workshop/internal/domain"
)

const scanSummaryColumns = `id, image, scanner, os_family, os_name,
	critical, high, medium, low, unknown, total, fixable, scanned_at, created_at`

// PostgresScanRepository implements ScanRepository using PostgreSQL.
type PostgresScanRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScanRepository creates a new PostgresScanRepository.
func NewPostgresScanRepository(pool *pgxpool.Pool) *PostgresScanRepository {
	return &PostgresScanRepository{pool: pool}
}

// Create inserts a scan summary. ID and CreatedAt are filled in when empty.
func (r *PostgresScanRepository) Create(ctx context.Context, s *domain.ScanSummary) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.Total = s.Counts.Total()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO scan_summaries (`+scanSummaryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, s.ID, s.Image, s.Scanner, s.OSFamily, s.OSName,
		s.Counts.Critical, s.Counts.High, s.Counts.Medium, s.Counts.Low, s.Counts.Unknown,
		s.Total, s.Fixable, s.ScannedAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert scan summary: %w", err)
	}
	return nil
}

// Get retrieves a scan summary by ID. It returns nil, nil when none exists.
func (r *PostgresScanRepository) Get(ctx context.Context, id string) (*domain.ScanSummary, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+scanSummaryColumns+`
		FROM scan_summaries
		WHERE id = $1
	`, id)

	s, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get scan summary: %w", err)
	}
	return s, nil
}

// LatestForImage returns the most recent summary recorded for image, or nil, nil.
func (r *PostgresScanRepository) LatestForImage(ctx context.Context, image string) (*domain.ScanSummary, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+scanSummaryColumns+`
		FROM scan_summaries
		WHERE image = $1
		ORDER BY scanned_at DESC, created_at DESC
		LIMIT 1
	`, image)

	s, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest scan summary for %s: %w", image, err)
	}
	return s, nil
}

// List returns up to limit summaries, newest first.
func (r *PostgresScanRepository) List(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+scanSummaryColumns+`
		FROM scan_summaries
		ORDER BY created_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scan summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.ScanSummary, 0, limit)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scan summary: %w", err)
		}
		summaries = append(summaries, *s)
	}

	return summaries, rows.Err()
}

func scanSummary(row pgx.Row) (*domain.ScanSummary, error) {
	var s domain.ScanSummary
	err := row.Scan(&s.ID, &s.Image, &s.Scanner, &s.OSFamily, &s.OSName,
		&s.Counts.Critical, &s.Counts.High, &s.Counts.Medium, &s.Counts.Low, &s.Counts.Unknown,
		&s.Total, &s.Fixable, &s.ScannedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
