package transform

import (
	"math"
	"strconv"
	"strings"
	"time"

	"matchday/internal/model"
)

// timestampFormats are the layouts a staged timestamp may arrive in. The
// list is ISO-centric on purpose: US-style and day-month-name forms fail to
// parse and fall through to the caller's null/fallback policy.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// lowerTrimPtr normalizes a raw field, returning nil when absent. A value
// that trims down to the empty string is kept as an empty string, matching
// the source pipeline's string normalization.
func lowerTrimPtr(r model.RawString) *string {
	if !r.Valid {
		return nil
	}
	s := lowerTrim(r.String)
	return &s
}

// verbatimPtr carries a raw field over without normalization.
func verbatimPtr(r model.RawString) *string {
	if !r.Valid {
		return nil
	}
	s := r.String
	return &s
}

// parseIntPtr coerces to an integer, nil on failure.
func parseIntPtr(r model.RawString) *int {
	if !r.Valid {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.String))
	if err != nil {
		return nil
	}
	return &n
}

// parseFloat coerces to a float, accepting a decimal comma as well as a
// decimal point.
func parseFloat(r model.RawString) (float64, bool) {
	if !r.Valid {
		return 0, false
	}
	s := strings.ReplaceAll(strings.TrimSpace(r.String), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseTimestamp coerces to a timestamp using the accepted layouts.
func parseTimestamp(r model.RawString) (time.Time, bool) {
	if !r.Valid {
		return time.Time{}, false
	}
	s := strings.TrimSpace(r.String)
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTimestampPtr(r model.RawString) *time.Time {
	t, ok := parseTimestamp(r)
	if !ok {
		return nil
	}
	return &t
}

// parseDatePtr coerces to a calendar date, nil on failure. Full timestamps
// are accepted and truncated to their date.
func parseDatePtr(r model.RawString) *time.Time {
	t, ok := parseTimestamp(r)
	if !ok {
		return nil
	}
	d := dateOf(t)
	return &d
}

// dateOf truncates a timestamp to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
