// Package timeutil centralizes timestamp handling for the tasks file.
//
// The tasks file has been written by several generations of the app, so
// created/completed stamps show up as RFC3339, zone-less ISO, or bare dates.
// Parsing here is total: a stamp that cannot be read resolves to the current
// time, which keeps read paths from ever failing on dirty data.
package timeutil

import (
	"strings"
	"time"
)

// layouts accepted by Parse, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// Parse converts a raw timestamp string to UTC. It never fails: an empty or
// unparseable value resolves to Now().
func Parse(raw string) time.Time {
	t, ok := TryParse(raw)
	if !ok {
		return Now()
	}
	return t
}

// TryParse is the strict variant of Parse for callers that need to know
// whether the stamp was readable.
func TryParse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Format renders a time as the RFC3339 UTC string used throughout the tasks
// file.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
