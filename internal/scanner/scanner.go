// Package scanner pulls a container image and runs an external vulnerability
// scanner against it.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/metrics"
)

var (
	// ErrMissingImage is returned when no image reference was given.
	ErrMissingImage = errors.New("image argument is required")
	// ErrScannerNotFound is returned when the scanner binary is not on PATH.
	ErrScannerNotFound = errors.New("scanner not installed")
	// ErrNoOutput is returned when the scanner exits cleanly but leaves no report behind.
	ErrNoOutput = errors.New("scanner produced no output file")
)

// Scan output modes, used as metric labels.
const (
	ModeTable     = "table"
	ModeJSONTable = "json+table"
)

// Options describes one scan run.
type Options struct {
	Image string
	// OutputFile, when set, receives the machine-readable report.
	OutputFile string
	// Severity is an optional comma-separated severity filter passed to the scanner.
	Severity string
}

// Mode returns the output mode the options select.
func (o Options) Mode() string {
	if o.OutputFile != "" {
		return ModeJSONTable
	}
	return ModeTable
}

// Scanner runs the pull and scan steps strictly in sequence.
type Scanner struct {
	runner  CommandRunner
	bin     string
	runtime string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a Scanner using bin as the scanner executable and runtime
// (docker, podman) to pull images. Human-readable output goes to stdout,
// progress from the external tools to stderr.
func New(runner CommandRunner, bin, runtime string, stdout, stderr io.Writer) *Scanner {
	return &Scanner{
		runner:  runner,
		bin:     bin,
		runtime: runtime,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run pulls opts.Image and scans it. With an output file the scanner runs
// twice, JSON into the file then a table to stdout; otherwise once, table only.
func (s *Scanner) Run(ctx context.Context, opts Options) (err error) {
	if opts.Image == "" {
		return ErrMissingImage
	}

	mode := opts.Mode()
	defer func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		metrics.ObserveScan(mode, result)
	}()

	scannerPath, err := s.runner.LookPath(s.bin)
	if err != nil {
		return fmt.Errorf("%w: %q not found on PATH", ErrScannerNotFound, s.bin)
	}

	log := logger.WithImage(opts.Image)
	log.Info("Pulling image", slog.String("runtime", s.runtime))

	timer := metrics.NewTimer()
	if err := s.runner.Run(ctx, s.stderr, s.stderr, s.runtime, "pull", opts.Image); err != nil {
		return fmt.Errorf("pull %s: %w", opts.Image, err)
	}
	timer.ObserveDuration(metrics.ScanDuration.WithLabelValues("pull"))

	if opts.OutputFile != "" {
		log.Info("Writing machine-readable report", slog.String("output", opts.OutputFile))

		timer = metrics.NewTimer()
		args := s.args("json", opts, "--output", opts.OutputFile)
		if err := s.runner.Run(ctx, s.stderr, s.stderr, scannerPath, args...); err != nil {
			return fmt.Errorf("scan %s (json): %w", opts.Image, err)
		}
		timer.ObserveDuration(metrics.ScanDuration.WithLabelValues("scan_json"))

		if _, err := os.Stat(opts.OutputFile); err != nil {
			return fmt.Errorf("%w: %s", ErrNoOutput, opts.OutputFile)
		}
	}

	log.Info("Scanning image", slog.String("scanner", s.bin))

	timer = metrics.NewTimer()
	if err := s.runner.Run(ctx, s.stdout, s.stderr, scannerPath, s.args("table", opts)...); err != nil {
		return fmt.Errorf("scan %s (table): %w", opts.Image, err)
	}
	timer.ObserveDuration(metrics.ScanDuration.WithLabelValues("scan_table"))

	log.Info("Scan complete", slog.String("mode", mode))
	return nil
}

func (s *Scanner) args(format string, opts Options, extra ...string) []string {
	args := []string{"image", "--format", format}
	args = append(args, extra...)
	if opts.Severity != "" {
		args = append(args, "--severity", opts.Severity)
	}
	return append(args, opts.Image)
}
