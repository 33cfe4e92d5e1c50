package handler

import (
	"net/http"
	"time"

	"catlog/internal/delivery/http/response"
	"catlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
}

// StatsHandler holds dependencies for usage statistics handlers
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
	}
}

// GetDailySummary handles the per-cat usage summary of one day
func (h *StatsHandler) GetDailySummary(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	date := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		date, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Invalid date format, must be YYYY-MM-DD")
		}
	}

	summary, err := h.statsUC.GetDailySummary(c.Request().Context(), ownerID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Daily summary retrieved successfully")
}

// GetChartData handles the bucketed usage chart series
func (h *StatsHandler) GetChartData(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	var query usecase.ChartQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chart query")
	}

	chart, err := h.statsUC.GetChartData(c.Request().Context(), ownerID, &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chart, "Chart data retrieved successfully")
}
