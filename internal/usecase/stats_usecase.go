package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Public period vocabulary accepted by chart queries.
const (
	ChartPeriodToday = "today"
	ChartPeriodWeek  = "week"
	ChartPeriodMonth = "month"
)

// ChartQuery represents the input for a usage chart. Period selects the
// bucket granularity ("today" for daily, "week" for weekly, "month" for
// monthly; daily when omitted). From and To default to a window ending now
// whose length depends on the granularity.
type ChartQuery struct {
	Period string     `json:"period,omitempty" query:"period" validate:"omitempty,oneof=today week month"`
	CatID  *uuid.UUID `json:"cat_id,omitempty" query:"catId"`
	From   *time.Time `json:"from,omitempty" query:"from"`
	To     *time.Time `json:"to,omitempty" query:"to"`
}

// ChartPoint is one bucket of a usage chart. Only buckets with at least one
// event appear in a chart.
type ChartPoint struct {
	Date       string `json:"date"` // Bucket key, e.g. "2024-01-15" or "2024-01".
	UrineCount int64  `json:"urine_count"`
	FecesCount int64  `json:"feces_count"`
	TotalCount int64  `json:"total_count"`
}

// ChartOutput is an ordered usage chart series for an owner, optionally
// narrowed to a single cat.
type ChartOutput struct {
	Granularity string        `json:"granularity"` // daily, weekly or monthly.
	CatID       *uuid.UUID    `json:"cat_id,omitempty"`
	CatName     *string       `json:"cat_name,omitempty"`
	From        time.Time     `json:"from"`
	To          time.Time     `json:"to"`
	Points      []*ChartPoint `json:"points"`
}

// CatDailySummary is one cat's usage on a given day. Cats without events
// appear with zero counts.
type CatDailySummary struct {
	CatID      uuid.UUID `json:"cat_id"`
	CatName    string    `json:"cat_name"`
	UrineCount int64     `json:"urine_count"`
	FecesCount int64     `json:"feces_count"`
	TotalCount int64     `json:"total_count"`
}

// DailySummaryOutput is the per-cat and aggregate usage for one day. Cats
// are ordered by registration time, matching ListCats.
type DailySummaryOutput struct {
	Date            string             `json:"date"` // "2006-01-02" in UTC.
	Cats            []*CatDailySummary `json:"cats"`
	TotalUrineCount int64              `json:"total_urine_count"`
	TotalFecesCount int64              `json:"total_feces_count"`
	TotalCount      int64              `json:"total_count"`
}

// StatsUsecase defines the interface for usage statistics use cases
type StatsUsecase interface {
	// GetDailySummary computes the per-cat and aggregate usage for the UTC
	// day of date, including owned cats without any events that day.
	GetDailySummary(ctx context.Context, ownerID string, date time.Time) (*DailySummaryOutput, error)

	// GetChartData computes a bucketed usage series for the owner. Buckets
	// without events are omitted.
	GetChartData(ctx context.Context, ownerID string, query *ChartQuery) (*ChartOutput, error)
}
