package entity

import (
	"github.com/google/uuid"
)

// CatUsageCount represents aggregated toilet event counts for one cat within
// a time range. Produced by the storage layer so counting stays close to the
// data instead of loading raw events into memory.
type CatUsageCount struct {
	CatID      uuid.UUID `json:"cat_id"`      // The cat these counts belong to.
	UrineCount int64     `json:"urine_count"` // Number of urine events in the range.
	FecesCount int64     `json:"feces_count"` // Number of feces events in the range.
}

// TotalCount returns the combined number of events for the cat.
func (c CatUsageCount) TotalCount() int64 {
	return c.UrineCount + c.FecesCount
}

// PeriodUsageCount represents aggregated toilet event counts for one period
// bucket (a day, an ISO week, or a month). Periods with no events are not
// present in aggregation results.
type PeriodUsageCount struct {
	Period     string `json:"period"`      // Bucket key: "2024-01-15" (day), "2024-01-08" (Monday of ISO week), "2024-01" (month).
	UrineCount int64  `json:"urine_count"` // Number of urine events in the bucket.
	FecesCount int64  `json:"feces_count"` // Number of feces events in the bucket.
}

// TotalCount returns the combined number of events in the bucket.
func (p PeriodUsageCount) TotalCount() int64 {
	return p.UrineCount + p.FecesCount
}
