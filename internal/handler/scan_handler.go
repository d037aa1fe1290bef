package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dhi-workshop/internal/domain"
	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/service"
	"dhi-workshop/internal/validator"
)

// ScanHandler serves recorded scan summaries.
type ScanHandler struct {
	reportService service.ReportServiceInterface
	validator     *validator.Validator
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(reportService service.ReportServiceInterface) *ScanHandler {
	return &ScanHandler{
		reportService: reportService,
		validator:     validator.NewValidator(),
	}
}

// ScanSummaryResponse represents a scan summary in the API response.
type ScanSummaryResponse struct {
	ID        string                `json:"id"`
	Image     string                `json:"image"`
	Scanner   string                `json:"scanner"`
	OSFamily  string                `json:"os_family,omitempty"`
	OSName    string                `json:"os_name,omitempty"`
	Counts    domain.SeverityCounts `json:"counts"`
	Total     int                   `json:"total"`
	Fixable   int                   `json:"fixable"`
	ScannedAt string                `json:"scanned_at"`
	CreatedAt string                `json:"created_at"`
}

// ComparisonResponse represents a baseline/candidate comparison.
type ComparisonResponse struct {
	Baseline         ScanSummaryResponse   `json:"baseline"`
	Candidate        ScanSummaryResponse   `json:"candidate"`
	Delta            domain.SeverityCounts `json:"delta"`
	ReductionPercent float64               `json:"reduction_percent"`
}

func toScanSummaryResponse(s *domain.ScanSummary) ScanSummaryResponse {
	return ScanSummaryResponse{
		ID:        s.ID,
		Image:     s.Image,
		Scanner:   s.Scanner,
		OSFamily:  s.OSFamily,
		OSName:    s.OSName,
		Counts:    s.Counts,
		Total:     s.Total,
		Fixable:   s.Fixable,
		ScannedAt: s.ScannedAt.UTC().Format(TimeFormat),
		CreatedAt: s.CreatedAt.UTC().Format(TimeFormat),
	}
}

// ListScans handles GET /api/scans?limit=N.
func (h *ScanHandler) ListScans(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "limit must be an integer"})
			return
		}
		limit = n
	}

	summaries, err := h.reportService.ListScans(c.Request.Context(), limit)
	if err != nil {
		h.internalError(c, "Failed to list scans", err)
		return
	}

	items := make([]ScanSummaryResponse, 0, len(summaries))
	for i := range summaries {
		items = append(items, toScanSummaryResponse(&summaries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"scans": items, "count": len(items)})
}

// GetScan handles GET /api/scans/:id.
func (h *ScanHandler) GetScan(c *gin.Context) {
	id := c.Param("id")
	if err := h.validator.ValidateScanID(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "id must be a valid UUID"})
		return
	}

	summary, err := h.reportService.GetScan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: err.Error()})
			return
		}
		h.internalError(c, "Failed to get scan", err)
		return
	}

	c.JSON(http.StatusOK, toScanSummaryResponse(summary))
}

// Compare handles GET /api/scans/compare?baseline=&candidate=.
func (h *ScanHandler) Compare(c *gin.Context) {
	q := domain.CompareQuery{
		Baseline:  c.Query("baseline"),
		Candidate: c.Query("candidate"),
	}
	if err := h.validator.ValidateCompareQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: validator.Describe(err)})
		return
	}

	cmp, err := h.reportService.Compare(c.Request.Context(), q.Baseline, q.Candidate)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: err.Error()})
			return
		}
		h.internalError(c, "Failed to compare scans", err)
		return
	}

	c.JSON(http.StatusOK, ComparisonResponse{
		Baseline:         toScanSummaryResponse(cmp.Baseline),
		Candidate:        toScanSummaryResponse(cmp.Candidate),
		Delta:            cmp.Delta,
		ReductionPercent: cmp.ReductionPercent,
	})
}

func (h *ScanHandler) internalError(c *gin.Context, msg string, err error) {
	logger.ErrorContext(c.Request.Context(), msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: "internal server error"})
}

// RegisterRoutes mounts the scan report API on rg.
func (h *ScanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/scans", h.ListScans)
	rg.GET("/scans/compare", h.Compare)
	rg.GET("/scans/:id", h.GetScan)
}
