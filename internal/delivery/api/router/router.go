// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chatdesk/internal/delivery/api/middleware"
	"chatdesk/internal/delivery/api/router/handler"
	"chatdesk/internal/domain/entity"
	"chatdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	ScreenHandler       *handler.ScreenHandler
	ModerationHandler   *handler.ModerationHandler
	RoleMiddleware      *middleware.RoleMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Gatherer            prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	screenHandler       *handler.ScreenHandler
	moderationHandler   *handler.ModerationHandler
	roleMiddleware      *middleware.RoleMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		screenHandler:       params.ScreenHandler,
		moderationHandler:   params.ModerationHandler,
		roleMiddleware:      params.RoleMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		gatherer:            params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	apiV1 := e.Group("/api/v1")

	screenGroup := apiV1.Group("/screen")
	{
		screenGroup.GET("", r.screenHandler.GetState)
		screenGroup.POST("/dismiss", r.screenHandler.Dismiss)
		screenGroup.POST("/back", r.screenHandler.Back)
		screenGroup.DELETE("/status", r.screenHandler.ClearStatus)
	}

	channelGroup := apiV1.Group("/channel")
	{
		channelGroup.GET("/messages", r.screenHandler.GetMessages)
	}

	// Moderator actions require the admin role. Only calls that reach the chat
	// service draw from the rate budget; prompt edits stay local.
	moderationGroup := apiV1.Group("/moderation")
	moderationGroup.Use(r.roleMiddleware.RequireRole(entity.RoleAdmin))
	{
		moderationGroup.POST("/flags", r.moderationHandler.FlagMessage, r.rateLimitMiddleware.Limit)
		moderationGroup.POST("/ban-prompt", r.moderationHandler.OpenBanPrompt)
		moderationGroup.PUT("/ban-prompt", r.moderationHandler.UpdateBanReason)
		moderationGroup.DELETE("/ban-prompt", r.moderationHandler.CancelBan)
		moderationGroup.POST("/ban-prompt/confirm", r.moderationHandler.ConfirmBan, r.rateLimitMiddleware.Limit)
	}
}
