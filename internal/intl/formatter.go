// Package intl renders timestamps and currency amounts for a caller-supplied
// locale and IANA time zone.
package intl

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // hardened runtime images ship without /usr/share/zoneinfo

	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ExampleAmount is the fixed amount rendered as the currency example.
const ExampleAmount = 1234567.891

const (
	fallbackDateLayout = "Monday, January 2, 2006"
	clockLayout        = "15:04:05 MST"
)

var (
	// ErrInvalidLocale is returned for locale identifiers that are not well-formed BCP 47 tags.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrInvalidTimeZone is returned for identifiers missing from the IANA time zone database.
	ErrInvalidTimeZone = errors.New("invalid time zone")
)

// Result is a formatted rendering of one instant.
type Result struct {
	Formatted     string
	NumberExample string
	Currency      string
	// DateLocale is the locale whose month and weekday names were used.
	DateLocale string
	// Language is the base language of the requested locale.
	Language string
	// Fallback is set when no date locale matched the requested language.
	Fallback bool
}

// Formatter renders dates and currency amounts. It holds no per-request state
// and is safe for concurrent use.
type Formatter struct {
	locales []monday.Locale
	matcher language.Matcher
}

// NewFormatter builds a Formatter over every locale with translated date names.
// en_US is listed first so it is the match when nothing closer exists.
func NewFormatter() *Formatter {
	locales := []monday.Locale{monday.LocaleEnUS}
	for _, l := range monday.ListLocales() {
		if l != monday.LocaleEnUS {
			locales = append(locales, l)
		}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(strings.ReplaceAll(string(l), "_", "-")))
	}

	return &Formatter{
		locales: locales,
		matcher: language.NewMatcher(tags),
	}
}

// ParseLocale parses a BCP 47 tag. Underscore separators are accepted.
// Only malformed tags are rejected: a well-formed tag with unknown subtags
// comes back stripped of them, so formatting falls back to the closest locale.
func ParseLocale(id string) (language.Tag, error) {
	tag, err := language.Parse(id)
	if err != nil {
		var unknown language.ValueError
		if errors.As(err, &unknown) {
			return tag, nil
		}
		return language.Und, fmt.Errorf("%w %q: %v", ErrInvalidLocale, id, err)
	}
	return tag, nil
}

// Zone names accepted regardless of case.
var zoneAliases = map[string]string{
	"utc":     "UTC",
	"gmt":     "GMT",
	"etc/utc": "Etc/UTC",
	"etc/gmt": "Etc/GMT",
	"zulu":    "Zulu",
}

// LoadTimeZone resolves an IANA time zone identifier. "Local" names the
// host zone rather than an IANA zone and is rejected.
func LoadTimeZone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimeZone)
	}
	if id == "Local" {
		return nil, fmt.Errorf("%w: %q is not an IANA time zone", ErrInvalidTimeZone, id)
	}
	if canonical, ok := zoneAliases[strings.ToLower(id)]; ok {
		id = canonical
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeZone, err)
	}
	return loc, nil
}

// Format renders at in the given zone using the conventions of localeID.
func (f *Formatter) Format(localeID, tzID string, at time.Time) (*Result, error) {
	tag, err := ParseLocale(localeID)
	if err != nil {
		return nil, err
	}
	loc, err := LoadTimeZone(tzID)
	if err != nil {
		return nil, err
	}

	dateLocale, fallback := f.dateLocale(tag)
	layout, ok := monday.FullFormatsByLocale[dateLocale]
	if !ok || layout == "" {
		layout = fallbackDateLayout
	}

	unit := CurrencyFor(tag)
	base, _ := tag.Base()
	return &Result{
		Formatted:     monday.Format(at.In(loc), layout+" "+clockLayout, dateLocale),
		NumberExample: FormatCurrency(tag, unit, ExampleAmount),
		Currency:      unit.String(),
		DateLocale:    string(dateLocale),
		Language:      base.String(),
		Fallback:      fallback,
	}, nil
}

func (f *Formatter) dateLocale(tag language.Tag) (monday.Locale, bool) {
	_, idx, conf := f.matcher.Match(tag)
	if idx < 0 || idx >= len(f.locales) {
		return monday.LocaleEnUS, true
	}
	return f.locales[idx], conf == language.No
}

// CurrencyFor returns the currency used in the tag's region, USD when none can be derived.
func CurrencyFor(tag language.Tag) currency.Unit {
	region, conf := tag.Region()
	if conf == language.No {
		return currency.USD
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return currency.USD
	}
	return unit
}

// FormatCurrency renders amount with the ISO code of unit, grouped and rounded
// the way the tag's locale writes numbers.
func FormatCurrency(tag language.Tag, unit currency.Unit, amount float64) string {
	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)
	return unit.String() + " " + p.Sprint(number.Decimal(amount, number.Scale(scale)))
}
