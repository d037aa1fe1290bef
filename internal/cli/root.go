// Package cli implements the scan command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"

	"dhi-workshop/internal/config"
	"dhi-workshop/internal/infrastructure/database"
	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/repository"
	"dhi-workshop/internal/scanner"
	"dhi-workshop/internal/service"
)

// pushJob is the Pushgateway job name for CLI runs.
const pushJob = "dhi_scan"

// ReportOpener connects to the report database. The returned func releases it.
type ReportOpener func(ctx context.Context, cfg *config.Config) (service.ReportServiceInterface, func(), error)

// Deps are the collaborators of the CLI commands.
type Deps struct {
	Config      *config.Config
	Runner      scanner.CommandRunner
	OpenReports ReportOpener
	// Gatherer is pushed to the Pushgateway after a scan when one is configured.
	Gatherer prometheus.Gatherer
}

// DefaultDeps wires the CLI to real executables and Postgres.
func DefaultDeps(cfg *config.Config) Deps {
	return Deps{
		Config:      cfg,
		Runner:      &scanner.ExecRunner{},
		OpenReports: OpenPostgresReports,
		Gatherer:    prometheus.DefaultGatherer,
	}
}

// NewRootCommand builds the scan command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	root := newScanCommand(deps)
	root.AddCommand(newSummarizeCommand())
	root.AddCommand(newCompareCommand())
	return root
}

// OpenPostgresReports migrates the report database and returns a ReportService on it.
func OpenPostgresReports(ctx context.Context, cfg *config.Config) (service.ReportServiceInterface, func(), error) {
	if err := database.Migrate(cfg.DatabaseURL()); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("connect report database: %w", err)
	}
	return service.NewReportService(repository.NewPostgresScanRepository(pool)), pool.Close, nil
}

// pushMetrics sends the run's metrics to the Pushgateway. Failures are logged only.
func pushMetrics(deps Deps, image string) {
	if deps.Config.PushgatewayURL == "" || deps.Gatherer == nil {
		return
	}
	err := push.New(deps.Config.PushgatewayURL, pushJob).
		Gatherer(deps.Gatherer).
		Grouping("image", image).
		Push()
	if err != nil {
		logger.Warn("Failed to push metrics",
			slog.String("url", deps.Config.PushgatewayURL),
			slog.String("error", err.Error()))
	}
}

func scannerName(bin string) string {
	return filepath.Base(bin)
}
