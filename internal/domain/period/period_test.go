package period

import (
	"testing"
	"time"
)

func TestKeyDaily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{
			name:     "plain utc timestamp",
			ts:       time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			expected: "2024-01-15",
		},
		{
			name:     "offset timestamp normalized to utc date",
			ts:       time.Date(2024, 1, 15, 23, 30, 0, 0, time.FixedZone("ART", -3*60*60)),
			expected: "2024-01-16",
		},
		{
			name:     "midnight boundary",
			ts:       time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Key(tt.ts, Daily); got != tt.expected {
				t.Fatalf("Key(%s, Daily) = %s, want %s", tt.ts, got, tt.expected)
			}
		})
	}
}

func TestKeyWeekly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{name: "monday maps to itself", ts: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), expected: "2024-01-08"},
		{name: "wednesday maps to monday", ts: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), expected: "2024-01-08"},
		{name: "sunday maps to previous monday", ts: time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC), expected: "2024-01-08"},
		{name: "next monday starts a new week", ts: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), expected: "2024-01-15"},
		{name: "year boundary sunday stays in old week", ts: time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), expected: "2023-12-25"},
		{name: "new year monday starts fresh week", ts: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), expected: "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Key(tt.ts, Weekly); got != tt.expected {
				t.Fatalf("Key(%s, Weekly) = %s, want %s", tt.ts, got, tt.expected)
			}
		})
	}
}

func TestKeyMonthly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{name: "mid month", ts: time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC), expected: "2024-03"},
		{name: "last instant of month", ts: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), expected: "2024-01"},
		{name: "offset pushes into next month", ts: time.Date(2024, 1, 31, 23, 30, 0, 0, time.FixedZone("ART", -3*60*60)), expected: "2024-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Key(tt.ts, Monthly); got != tt.expected {
				t.Fatalf("Key(%s, Monthly) = %s, want %s", tt.ts, got, tt.expected)
			}
		})
	}
}

func TestGranularityIsValid(t *testing.T) {
	t.Parallel()

	for _, g := range []Granularity{Daily, Weekly, Monthly} {
		if !g.IsValid() {
			t.Fatalf("expected %s to be valid", g)
		}
	}

	if Granularity("hourly").IsValid() {
		t.Fatal("expected hourly to be invalid")
	}
}

func TestDefaultRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity Granularity
		wantFrom    time.Time
	}{
		{name: "daily covers thirty days", granularity: Daily, wantFrom: now.AddDate(0, 0, -30)},
		{name: "weekly covers twelve weeks", granularity: Weekly, wantFrom: now.AddDate(0, 0, -84)},
		{name: "monthly covers twelve months", granularity: Monthly, wantFrom: now.AddDate(0, -12, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, to := DefaultRange(tt.granularity, now)
			if !to.Equal(now) {
				t.Fatalf("DefaultRange to = %s, want %s", to, now)
			}
			if !from.Equal(tt.wantFrom) {
				t.Fatalf("DefaultRange from = %s, want %s", from, tt.wantFrom)
			}
		})
	}
}
