package scanner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"dhi-workshop/internal/domain"
)

// Report is the subset of the scanner's JSON report that summaries are built from.
type Report struct {
	SchemaVersion int            `json:"SchemaVersion"`
	CreatedAt     time.Time      `json:"CreatedAt,omitempty"`
	ArtifactName  string         `json:"ArtifactName,omitempty"`
	ArtifactType  string         `json:"ArtifactType,omitempty"`
	Metadata      ReportMetadata `json:"Metadata,omitempty"`
	Results       []ReportResult `json:"Results"`
}

// ReportMetadata describes the scanned artifact.
type ReportMetadata struct {
	OS struct {
		Family string `json:"Family"`
		Name   string `json:"Name"`
	} `json:"OS,omitempty"`
	ImageID     string   `json:"ImageID,omitempty"`
	RepoTags    []string `json:"RepoTags,omitempty"`
	RepoDigests []string `json:"RepoDigests,omitempty"`
}

// ReportResult groups findings per scan target (OS packages, a lockfile, ...).
type ReportResult struct {
	Target          string                `json:"Target"`
	Class           string                `json:"Class,omitempty"`
	Type            string                `json:"Type,omitempty"`
	Vulnerabilities []ReportVulnerability `json:"Vulnerabilities"`
}

// ReportVulnerability is a single finding.
type ReportVulnerability struct {
	VulnerabilityID  string `json:"VulnerabilityID"`
	PkgName          string `json:"PkgName"`
	InstalledVersion string `json:"InstalledVersion"`
	FixedVersion     string `json:"FixedVersion,omitempty"`
	Status           string `json:"Status,omitempty"`
	Severity         string `json:"Severity"`
	Title            string `json:"Title,omitempty"`
}

// ParseReport decodes a JSON report.
func ParseReport(r io.Reader) (*Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

// ReadReportFile decodes the JSON report at path.
func ReadReportFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	report, err := ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

// Summarize counts findings per severity. A vulnerability reported for the same
// package in several targets is counted once. image overrides the artifact name
// recorded in the report when non-empty.
func Summarize(report *Report, image, scannerName string) *domain.ScanSummary {
	if image == "" {
		image = report.ArtifactName
	}
	summary := &domain.ScanSummary{
		Image:     image,
		Scanner:   scannerName,
		OSFamily:  report.Metadata.OS.Family,
		OSName:    report.Metadata.OS.Name,
		ScannedAt: report.CreatedAt,
	}
	if summary.ScannedAt.IsZero() {
		summary.ScannedAt = time.Now().UTC()
	}

	seen := make(map[string]struct{})
	for _, result := range report.Results {
		for _, v := range result.Vulnerabilities {
			key := v.VulnerabilityID + "\x00" + v.PkgName + "\x00" + v.InstalledVersion
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			summary.Counts.Add(domain.NormalizeSeverity(v.Severity))
			if v.FixedVersion != "" {
				summary.Fixable++
			}
		}
	}
	summary.Total = summary.Counts.Total()
	return summary
}

// SeverityMap returns the summary counts keyed by severity name.
func SeverityMap(summary *domain.ScanSummary) map[string]int {
	out := make(map[string]int, len(domain.Severities))
	for _, sev := range domain.Severities {
		out[string(sev)] = summary.Counts.Get(sev)
	}
	return out
}
