package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dhi-workshop/internal/domain"
	"dhi-workshop/internal/intl"
	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/metrics"
	"dhi-workshop/internal/validator"
)

// Formatter renders an instant for a locale and time zone.
type Formatter interface {
	Format(localeID, tzID string, at time.Time) (*intl.Result, error)
}

// TimeHandlerConfig holds the defaults applied to /api/time requests.
type TimeHandlerConfig struct {
	DefaultLocale string
	DefaultTZ     string
	ICUDataPath   string
}

// TimeHandler serves localized date, time and currency renderings.
type TimeHandler struct {
	formatter Formatter
	validator *validator.Validator
	cfg       TimeHandlerConfig
	now       func() time.Time
}

// NewTimeHandler creates a new TimeHandler.
func NewTimeHandler(formatter Formatter, cfg TimeHandlerConfig) *TimeHandler {
	return &TimeHandler{
		formatter: formatter,
		validator: validator.NewValidator(),
		cfg:       cfg,
		now:       time.Now,
	}
}

// TimeResponse is the body of a successful /api/time response.
type TimeResponse struct {
	Locale        string  `json:"locale"`
	TZ            string  `json:"tz"`
	Formatted     string  `json:"formatted"`
	NumberExample string  `json:"numberExample"`
	Timestamp     string  `json:"timestamp"`
	ICUDataPath   *string `json:"icuDataPath"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GetTime handles GET /api/time?locale=&tz=.
func (h *TimeHandler) GetTime(c *gin.Context) {
	// Absent and empty parameters both select the configured default.
	q := domain.TimeQuery{
		Locale: c.Query("locale"),
		TZ:     c.Query("tz"),
	}
	if q.Locale == "" {
		q.Locale = h.cfg.DefaultLocale
	}
	if q.TZ == "" {
		q.TZ = h.cfg.DefaultTZ
	}

	if err := h.validator.ValidateTimeQuery(&q); err != nil {
		metrics.ObserveFormat("invalid_request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: validator.Describe(err)})
		return
	}

	now := h.now()
	res, err := h.formatter.Format(q.Locale, q.TZ, now)
	if err != nil {
		code := "invalid_request"
		switch {
		case errors.Is(err, intl.ErrInvalidLocale):
			code = "invalid_locale"
		case errors.Is(err, intl.ErrInvalidTimeZone):
			code = "invalid_timezone"
		}
		metrics.ObserveFormat(code)
		logger.WarnContext(c.Request.Context(), "Rejected time request",
			slog.String("locale", q.Locale),
			slog.String("tz", q.TZ),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: code, Message: err.Error()})
		return
	}

	metrics.ObserveFormat("ok")
	if res.Fallback {
		metrics.ObserveFallback(res.Language)
	}

	var icuDataPath *string
	if h.cfg.ICUDataPath != "" {
		p := h.cfg.ICUDataPath
		icuDataPath = &p
	}

	c.JSON(http.StatusOK, TimeResponse{
		Locale:        q.Locale,
		TZ:            q.TZ,
		Formatted:     res.Formatted,
		NumberExample: res.NumberExample,
		Timestamp:     now.UTC().Format(TimeFormat),
		ICUDataPath:   icuDataPath,
	})
}
