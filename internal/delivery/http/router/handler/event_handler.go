package handler

import (
	"net/http"

	"catlog/internal/delivery/http/response"
	"catlog/internal/infra/metrics"
	"catlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Metrics *metrics.Metrics
}

// EventHandler holds dependencies for toilet event handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	metrics *metrics.Metrics
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		metrics: params.Metrics,
	}
}

// AddEvent handles recording a toilet event
func (h *EventHandler) AddEvent(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	var input *usecase.AddEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.eventUC.AddEvent(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.metrics.RecordEventLogged(event.EventType.String())

	return response.Success(c, http.StatusCreated, event, "Toilet event recorded successfully")
}

// GetHistory handles retrieving one page of filtered event history
func (h *EventHandler) GetHistory(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	var query usecase.HistoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history query")
	}

	history, err := h.eventUC.GetHistory(c.Request().Context(), ownerID, &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Event history retrieved successfully")
}

// GetEvent handles retrieving a single toilet event
func (h *EventHandler) GetEvent(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), ownerID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Toilet event retrieved successfully")
}

// UpdateEvent handles a sparse toilet event update
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var input *usecase.UpdateEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), ownerID, eventID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Toilet event updated successfully")
}

// DeleteEvent handles toilet event deletion
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	ownerID, err := getOwnerID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	confirmed := c.QueryParam("confirm") == "true"

	if err := h.eventUC.DeleteEvent(c.Request().Context(), ownerID, eventID, confirmed); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Toilet event deleted successfully"}, "Toilet event deleted successfully")
}
