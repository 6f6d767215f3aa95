package timeutil

import (
	"testing"
	"time"
)

func TestTryParseAcceptedEncodings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2025-08-20T09:30:00Z", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2025-08-20T15:00:00+05:30", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", "2025-08-20T09:30:00.123456789Z", time.Date(2025, 8, 20, 9, 30, 0, 123456789, time.UTC)},
		{"zoneless iso", "2025-08-20T09:30:00", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
		{"zoneless iso micros", "2025-08-20T09:30:00.500000", time.Date(2025, 8, 20, 9, 30, 0, 500000000, time.UTC)},
		{"space separated", "2025-08-20 09:30:00", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
		{"minute precision", "2025-08-20 09:30", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
		{"bare date", "2025-08-20", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"padded", "  2025-08-20T09:30:00Z  ", time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryParse(tt.raw)
			if !ok {
				t.Fatalf("TryParse(%q) not ok", tt.raw)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TryParse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("TryParse(%q) location = %v, want UTC", tt.raw, got.Location())
			}
		})
	}
}

func TestTryParseRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "20/08/2025", "123456"} {
		if _, ok := TryParse(raw); ok {
			t.Errorf("TryParse(%q) ok, want failure", raw)
		}
	}
}

func TestParseNeverFails(t *testing.T) {
	before := Now()
	got := Parse("definitely not a timestamp")
	after := Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Parse fallback = %v, want between %v and %v", got, before, after)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 8, 20, 15, 0, 0, 0, loc)

	raw := Format(local)
	if raw != "2025-08-20T09:30:00Z" {
		t.Errorf("Format = %q, want UTC RFC3339", raw)
	}
	back, ok := TryParse(raw)
	if !ok || !back.Equal(local) {
		t.Errorf("round trip = %v (ok=%v), want %v", back, ok, local)
	}
}
