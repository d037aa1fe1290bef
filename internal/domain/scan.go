package domain

import (
	"strings"
	"time"
)

// Severity is a vulnerability severity as reported by the scanner.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityUnknown  Severity = "UNKNOWN"
)

// Severities lists all severities from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityUnknown,
}

// NormalizeSeverity maps a scanner severity string onto a known Severity.
// Anything unrecognised is UNKNOWN.
func NormalizeSeverity(s string) Severity {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Severities {
		if sev == known {
			return sev
		}
	}
	return SeverityUnknown
}

// IsValidSeverityFilter checks a comma-separated severity filter such as "HIGH,CRITICAL".
func IsValidSeverityFilter(filter string) bool {
	if filter == "" {
		return false
	}
	for _, part := range strings.Split(filter, ",") {
		sev := Severity(strings.ToUpper(strings.TrimSpace(part)))
		found := false
		for _, known := range Severities {
			if sev == known {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SeverityCounts holds per-severity finding counts.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Unknown  int `json:"unknown"`
}

// Add increments the counter for sev.
func (c *SeverityCounts) Add(sev Severity) {
	switch sev {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	default:
		c.Unknown++
	}
}

// Get returns the counter for sev.
func (c SeverityCounts) Get(sev Severity) int {
	switch sev {
	case SeverityCritical:
		return c.Critical
	case SeverityHigh:
		return c.High
	case SeverityMedium:
		return c.Medium
	case SeverityLow:
		return c.Low
	default:
		return c.Unknown
	}
}

// Total returns the sum of all counters.
func (c SeverityCounts) Total() int {
	return c.Critical + c.High + c.Medium + c.Low + c.Unknown
}

// ScanSummary is the recorded outcome of scanning one image.
type ScanSummary struct {
	ID        string         `json:"id"`
	Image     string         `json:"image"`
	Scanner   string         `json:"scanner"`
	OSFamily  string         `json:"os_family,omitempty"`
	OSName    string         `json:"os_name,omitempty"`
	Counts    SeverityCounts `json:"counts"`
	Total     int            `json:"total"`
	Fixable   int            `json:"fixable"`
	ScannedAt time.Time      `json:"scanned_at"`
	CreatedAt time.Time      `json:"created_at"`
}

// Comparison contrasts a baseline image with a candidate (usually its hardened variant).
type Comparison struct {
	Baseline  *ScanSummary   `json:"baseline"`
	Candidate *ScanSummary   `json:"candidate"`
	Delta     SeverityCounts `json:"delta"`
	// ReductionPercent is the drop in total findings relative to the baseline.
	// Negative when the candidate has more findings.
	ReductionPercent float64 `json:"reduction_percent"`
}

// Compare builds the comparison of candidate against baseline.
func Compare(baseline, candidate *ScanSummary) *Comparison {
	cmp := &Comparison{
		Baseline:  baseline,
		Candidate: candidate,
		Delta: SeverityCounts{
			Critical: candidate.Counts.Critical - baseline.Counts.Critical,
			High:     candidate.Counts.High - baseline.Counts.High,
			Medium:   candidate.Counts.Medium - baseline.Counts.Medium,
			Low:      candidate.Counts.Low - baseline.Counts.Low,
			Unknown:  candidate.Counts.Unknown - baseline.Counts.Unknown,
		},
	}
	if baseline.Total > 0 {
		cmp.ReductionPercent = float64(baseline.Total-candidate.Total) / float64(baseline.Total) * 100
	}
	return cmp
}
