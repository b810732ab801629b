package league

import (
	"net/http"
	"strings"
	"time"
)

// Upstream rows carry dates in whichever format the backend serialiser
// produced: RFC 1123 from Flask, ISO-8601 from form posts, SQL datetimes
// from raw rows.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	http.TimeFormat,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an upstream date. Values without a zone are taken as UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOnly returns the YYYY-MM-DD portion of an upstream date for date-only
// form fields. Unparseable input is cut at the first "T".
func DateOnly(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) >= 10 && value[4] == '-' && value[7] == '-' {
		return value[:10]
	}
	if t, ok := ParseDate(value); ok {
		return t.UTC().Format(time.DateOnly)
	}
	before, _, _ := strings.Cut(value, "T")
	return before
}

// KickoffIn parses an upstream kickoff into loc. A value without a time of
// day is midnight of that date in loc.
func KickoffIn(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return d, true
	}
	t, ok := ParseDate(value)
	if !ok {
		return time.Time{}, false
	}
	return t.In(loc), true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
