package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/metrics"
	"dhi-workshop/internal/scanner"
	"dhi-workshop/internal/validator"
)

type scanFlags struct {
	severity string
	record   bool
	timeout  time.Duration
}

func newScanCommand(deps Deps) *cobra.Command {
	var flags scanFlags
	v := validator.NewValidator()

	cmd := &cobra.Command{
		Use:   "scan <image> [output-file]",
		Short: "Pull a container image and scan it for vulnerabilities",
		Long: `Pulls the image with the container runtime, then scans it. With an output file the
scanner first writes a JSON report to that file and then prints a table to stdout;
without one only the table is printed.`,
		Example: `  scan node:22
  scan dhi.io/node:22 dhi-node.json
  scan --record python:3.13 python.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return scanner.ErrMissingImage
			}
			if len(args) > 2 {
				return fmt.Errorf("accepts at most 2 args, received %d", len(args))
			}
			if err := v.ValidateImageRef(args[0]); err != nil {
				return fmt.Errorf("image %q: %w", args[0], err)
			}
			if err := v.ValidateSeverityFilter(flags.severity); err != nil {
				return err
			}
			if flags.record && len(args) < 2 {
				return errors.New("--record requires an output file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is for argument errors only.
			cmd.SilenceUsage = true

			opts := scanner.Options{Image: args[0], Severity: flags.severity}
			if len(args) == 2 {
				opts.OutputFile = args[1]
			}
			return runScan(cmd, deps, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&flags.severity, "severity", "s", "", "Comma-separated severities to report, e.g. HIGH,CRITICAL")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Store a summary of the JSON report in the report database")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 0, "Abort the run after this long (0 disables)")
	return cmd
}

func runScan(cmd *cobra.Command, deps Deps, flags scanFlags, opts scanner.Options) error {
	ctx := cmd.Context()
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}
	defer pushMetrics(deps, opts.Image)

	cfg := deps.Config
	s := scanner.New(deps.Runner, cfg.ScannerBin, cfg.ContainerRuntime, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := s.Run(ctx, opts); err != nil {
		return err
	}

	if opts.OutputFile == "" || (!flags.record && cfg.PushgatewayURL == "") {
		return nil
	}

	report, err := scanner.ReadReportFile(opts.OutputFile)
	if err != nil {
		return err
	}
	summary := scanner.Summarize(report, opts.Image, scannerName(cfg.ScannerBin))
	metrics.ObserveFindings(scanner.SeverityMap(summary))

	if !flags.record {
		return nil
	}

	reports, release, err := deps.OpenReports(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open report database: %w", err)
	}
	defer release()

	if err := reports.Record(ctx, summary); err != nil {
		return err
	}

	logger.Info("Scan recorded",
		slog.String("id", summary.ID),
		slog.String("image", summary.Image),
		slog.Int("total", summary.Total))
	fmt.Fprintf(cmd.ErrOrStderr(), "Recorded scan %s (%d findings)\n", summary.ID, summary.Total)
	return nil
}
