// Package period defines the time bucket granularities used by usage
// statistics and derives the canonical bucket key for a timestamp. The
// storage layer must produce keys identical to Key for its own grouping.
package period

import "time"

// Granularity represents the bucket size used when grouping toilet events.
type Granularity string

const (
	// Daily groups events by calendar day.
	Daily Granularity = "daily"
	// Weekly groups events by ISO week (Monday through Sunday).
	Weekly Granularity = "weekly"
	// Monthly groups events by calendar month.
	Monthly Granularity = "monthly"
)

// String returns the string representation of the Granularity.
func (g Granularity) String() string {
	return string(g)
}

// IsValid checks if the Granularity is a valid value.
func (g Granularity) IsValid() bool {
	switch g {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// Key returns the bucket key for t under g. The key is derived from the UTC
// instant of t, so timestamps recorded with an offset land in the bucket of
// their UTC calendar date.
//
// Key formats: "2006-01-02" for Daily, "2006-01" for Monthly, and the Monday
// of the ISO week formatted as "2006-01-02" for Weekly.
func Key(t time.Time, g Granularity) string {
	utc := t.UTC()

	switch g {
	case Weekly:
		// Roll back to Monday. Weekday is 0 for Sunday through 6 for
		// Saturday, so Sunday rolls back six days.
		monday := utc.AddDate(0, 0, -((int(utc.Weekday()) + 6) % 7))

		return monday.Format(time.DateOnly)
	case Monthly:
		return utc.Format("2006-01")
	default:
		return utc.Format(time.DateOnly)
	}
}

// DefaultRange returns the default reporting window ending at now for charts
// that were requested without an explicit range: the last 30 days for Daily,
// the last 12 weeks for Weekly, and the last 12 months for Monthly.
func DefaultRange(g Granularity, now time.Time) (from, to time.Time) {
	to = now

	switch g {
	case Weekly:
		from = to.AddDate(0, 0, -12*7)
	case Monthly:
		from = to.AddDate(0, -12, 0)
	default:
		from = to.AddDate(0, 0, -30)
	}

	return from, to
}
