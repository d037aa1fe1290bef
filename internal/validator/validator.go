package validator

import (
	"errors"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"dhi-workshop/internal/domain"
)

const maxIdentifierLength = 64

var (
	localeRegex   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	timeZoneRegex = regexp.MustCompile(`^[A-Za-z0-9_+/-]+$`)
	// registry[:port]/repository[:tag][@digest]. Repository names are lowercase;
	// tags may carry uppercase.
	imageRefRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._/:-]*(:[A-Za-z0-9_][A-Za-z0-9_.-]{0,127})?(@[a-z0-9]+:[A-Fa-f0-9]+)?$`)
)

// Validator provides validation methods for request inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTimeQuery checks the shape of the locale and tz parameters.
// Whether they name a real locale or zone is decided by the formatter.
func (v *Validator) ValidateTimeQuery(q *domain.TimeQuery) error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Locale,
			validation.Required.Error("locale_required"),
			validation.Length(1, maxIdentifierLength).Error("locale_too_long"),
			validation.Match(localeRegex).Error("invalid_locale_format"),
		),
		validation.Field(&q.TZ,
			validation.Required.Error("tz_required"),
			validation.Length(1, maxIdentifierLength).Error("tz_too_long"),
			validation.Match(timeZoneRegex).Error("invalid_tz_format"),
		),
	)
}

// ValidateScanID checks that id is a UUID.
func (v *Validator) ValidateScanID(id string) error {
	return validation.Validate(id,
		validation.Required.Error("id_required"),
		is.UUID.Error("id_must_be_uuid"),
	)
}

// ValidateImageRef checks an image reference such as "node:22-alpine".
func (v *Validator) ValidateImageRef(ref string) error {
	return validation.Validate(ref,
		validation.Required.Error("image_required"),
		validation.Length(1, 255).Error("image_too_long"),
		validation.Match(imageRefRegex).Error("invalid_image_reference"),
	)
}

// ValidateCompareQuery validates both image references of a comparison.
func (v *Validator) ValidateCompareQuery(q *domain.CompareQuery) error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Baseline,
			validation.Required.Error("baseline_required"),
			validation.Match(imageRefRegex).Error("invalid_image_reference"),
		),
		validation.Field(&q.Candidate,
			validation.Required.Error("candidate_required"),
			validation.Match(imageRefRegex).Error("invalid_image_reference"),
		),
	)
}

// ValidateSeverityFilter checks a comma-separated severity filter.
func (v *Validator) ValidateSeverityFilter(filter string) error {
	return validation.Validate(filter,
		validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if s == "" || domain.IsValidSeverityFilter(s) {
				return nil
			}
			return validation.NewError("invalid_severity", "severity must be a comma-separated list of CRITICAL, HIGH, MEDIUM, LOW, UNKNOWN")
		}),
	)
}

// FieldErrors flattens ozzo validation errors into field -> reason pairs.
// Non-validation errors are reported under "request".
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
	} else if err != nil {
		out["request"] = err.Error()
	}
	return out
}

// Describe renders validation errors as a single deterministic message.
func Describe(err error) string {
	fields := FieldErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg := ""
	for i, k := range keys {
		if i > 0 {
			msg += "; "
		}
		if k == "request" {
			msg += fields[k]
		} else {
			msg += k + ": " + fields[k]
		}
	}
	return msg
}
