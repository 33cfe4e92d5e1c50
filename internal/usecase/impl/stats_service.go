package impl

import (
	"context"
	"time"

	"catlog/internal/domain/entity"
	domainerrors "catlog/internal/domain/errors"
	"catlog/internal/domain/period"
	"catlog/internal/domain/repository"
	"catlog/internal/usecase"

	"github.com/google/uuid"
)

type statsService struct {
	catRepo   repository.CatRepository
	eventRepo repository.EventRepository
}

// NewStatsService creates a new usage statistics service instance
func NewStatsService(catRepo repository.CatRepository, eventRepo repository.EventRepository) usecase.StatsUsecase {
	return &statsService{
		catRepo:   catRepo,
		eventRepo: eventRepo,
	}
}

// GetDailySummary computes the per-cat and aggregate usage for the UTC day
// of date. The aggregate query returns only cats with events; the summary
// joins it against the full roster so every owned cat appears, at zero if
// silent that day.
func (s *statsService) GetDailySummary(ctx context.Context, ownerID string, date time.Time) (*usecase.DailySummaryOutput, error) {
	utc := date.UTC()
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	cats, err := s.catRepo.FindCatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list cats")
	}

	counts, err := s.eventRepo.AggregateUsageByCat(ctx, ownerID, dayStart, dayEnd)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "aggregate usage by cat")
	}

	byCat := make(map[uuid.UUID]*entity.CatUsageCount, len(counts))
	for _, count := range counts {
		byCat[count.CatID] = count
	}

	out := &usecase.DailySummaryOutput{
		Date: dayStart.Format(time.DateOnly),
		Cats: make([]*usecase.CatDailySummary, 0, len(cats)),
	}

	for _, cat := range cats {
		summary := &usecase.CatDailySummary{
			CatID:   cat.ID,
			CatName: cat.Name,
		}
		if count, ok := byCat[cat.ID]; ok {
			summary.UrineCount = count.UrineCount
			summary.FecesCount = count.FecesCount
		}
		summary.TotalCount = summary.UrineCount + summary.FecesCount

		out.TotalUrineCount += summary.UrineCount
		out.TotalFecesCount += summary.FecesCount
		out.Cats = append(out.Cats, summary)
	}
	out.TotalCount = out.TotalUrineCount + out.TotalFecesCount

	return out, nil
}

// GetChartData computes a bucketed usage series for the owner. Unlike the
// daily summary there is no zero-fill: only buckets with at least one event
// appear, sorted ascending by bucket key.
func (s *statsService) GetChartData(ctx context.Context, ownerID string, query *usecase.ChartQuery) (*usecase.ChartOutput, error) {
	if err := validateInput(query); err != nil {
		return nil, err
	}

	granularity := granularityFromPeriod(query.Period)

	from, to := period.DefaultRange(granularity, time.Now().UTC())
	if query.From != nil {
		from = query.From.UTC()
	}
	if query.To != nil {
		to = query.To.UTC()
	}
	if from.After(to) {
		return nil, domainerrors.NewValidationError("from", "from must not be after to")
	}

	out := &usecase.ChartOutput{
		Granularity: granularity.String(),
		From:        from,
		To:          to,
	}

	var catID *uuid.UUID
	if query.CatID != nil {
		cat, err := s.catRepo.FindCatByID(ctx, *query.CatID, ownerID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find cat")
		}
		if cat == nil {
			return nil, domainerrors.NewNotFoundError("cat", query.CatID.String())
		}
		out.CatID = &cat.ID
		out.CatName = &cat.Name
		catID = &cat.ID
	}

	buckets, err := s.eventRepo.AggregateUsageByPeriod(ctx, ownerID, catID, granularity, from, to)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "aggregate usage by period")
	}

	points := make([]*usecase.ChartPoint, 0, len(buckets))
	for _, bucket := range buckets {
		points = append(points, &usecase.ChartPoint{
			Date:       bucket.Period,
			UrineCount: bucket.UrineCount,
			FecesCount: bucket.FecesCount,
			TotalCount: bucket.TotalCount(),
		})
	}
	out.Points = points

	return out, nil
}

// granularityFromPeriod maps the public period vocabulary onto bucket
// granularities. Unset defaults to daily.
func granularityFromPeriod(p string) period.Granularity {
	switch p {
	case usecase.ChartPeriodWeek:
		return period.Weekly
	case usecase.ChartPeriodMonth:
		return period.Monthly
	default:
		return period.Daily
	}
}
