// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catlog/internal/delivery/http/middleware"
	"catlog/internal/delivery/http/router/handler"
	"catlog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatHandler     *handler.CatHandler
	EventHandler   *handler.EventHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	catHandler     *handler.CatHandler
	eventHandler   *handler.EventHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catHandler:     params.CatHandler,
		eventHandler:   params.EventHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints, deliberately unauthenticated
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.metrics.Registry(), promhttp.HandlerOpts{})))

	// Cat management routes
	catsGroup := e.Group("/cats")
	catsGroup.Use(r.authMiddleware.Authenticate)
	{
		catsGroup.POST("", r.catHandler.RegisterCat)
		catsGroup.GET("", r.catHandler.ListCats)
		catsGroup.GET("/:catId", r.catHandler.GetCat)
		catsGroup.PATCH("/:catId", r.catHandler.UpdateCat)
		catsGroup.DELETE("/:catId", r.catHandler.DeleteCat)
		catsGroup.POST("/:catId/image", r.catHandler.UploadCatImage)
	}

	// Toilet event routes
	eventsGroup := e.Group("/events")
	eventsGroup.Use(r.authMiddleware.Authenticate)
	{
		eventsGroup.POST("", r.eventHandler.AddEvent)
		eventsGroup.GET("", r.eventHandler.GetHistory)
		eventsGroup.GET("/:eventId", r.eventHandler.GetEvent)
		eventsGroup.PATCH("/:eventId", r.eventHandler.UpdateEvent)
		eventsGroup.DELETE("/:eventId", r.eventHandler.DeleteEvent)
	}

	// Usage statistics routes
	statsGroup := e.Group("/stats")
	statsGroup.Use(r.authMiddleware.Authenticate)
	{
		statsGroup.GET("/daily", r.statsHandler.GetDailySummary)
		statsGroup.GET("/chart", r.statsHandler.GetChartData)
	}
}
