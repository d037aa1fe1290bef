package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhi-workshop/internal/domain"
	"dhi-workshop/internal/repository"
)

func newSummary(image string, scannedAt time.Time, counts domain.SeverityCounts) *domain.ScanSummary {
	return &domain.ScanSummary{
		Image:     image,
		Scanner:   "trivy",
		OSFamily:  "debian",
		OSName:    "12.11",
		Counts:    counts,
		Fixable:   1,
		ScannedAt: scannedAt,
	}
}

func TestPostgresScanRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresScanRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		testDB.TruncateTables(t, "scan_summaries")

		s := newSummary("node:22", time.Now().UTC().Truncate(time.Microsecond),
			domain.SeverityCounts{Critical: 1, High: 3, Medium: 1, Low: 1, Unknown: 1})

		require.NoError(t, repo.Create(ctx, s))
		require.NotEmpty(t, s.ID)
		assert.Equal(t, 7, s.Total)

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, "node:22", got.Image)
		assert.Equal(t, "trivy", got.Scanner)
		assert.Equal(t, s.Counts, got.Counts)
		assert.Equal(t, 7, got.Total)
		assert.Equal(t, 1, got.Fixable)
		assert.True(t, s.ScannedAt.Equal(got.ScannedAt))
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("latest for image", func(t *testing.T) {
		testDB.TruncateTables(t, "scan_summaries")

		older := newSummary("python:3.13", time.Now().Add(-time.Hour), domain.SeverityCounts{High: 9})
		newer := newSummary("python:3.13", time.Now(), domain.SeverityCounts{High: 4})
		other := newSummary("dhi.io/python:3.13", time.Now(), domain.SeverityCounts{})
		require.NoError(t, repo.Create(ctx, newer))
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, other))

		got, err := repo.LatestForImage(ctx, "python:3.13")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID, got.ID)
		assert.Equal(t, 4, got.Counts.High)

		none, err := repo.LatestForImage(ctx, "never-scanned:latest")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("list newest first with limit", func(t *testing.T) {
		testDB.TruncateTables(t, "scan_summaries")

		base := time.Now().UTC()
		for i := 0; i < 5; i++ {
			s := newSummary("node:22", base, domain.SeverityCounts{Low: i})
			s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, repo.Create(ctx, s))
		}

		list, err := repo.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, 4, list[0].Counts.Low)
		assert.Equal(t, 3, list[1].Counts.Low)
		assert.Equal(t, 2, list[2].Counts.Low)
	})

	t.Run("list empty", func(t *testing.T) {
		testDB.TruncateTables(t, "scan_summaries")

		list, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
