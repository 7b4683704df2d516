package routes

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	ReviewHandler  *handlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket CRUD plus the nested review creation
// routes. Mutations use POST to match form submissions; the GET variants of
// update and delete return the current state for pre-fill and confirmation.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/add", cfg.TicketHandler.Create)
		tickets.POST("/review/add", cfg.ReviewHandler.CreateWithTicket)

		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.GET("/:id/update", cfg.TicketHandler.Get)
		tickets.POST("/:id/update", cfg.TicketHandler.Update)
		tickets.GET("/:id/delete", cfg.TicketHandler.Get)
		tickets.POST("/:id/delete", cfg.TicketHandler.Delete)
		tickets.GET("/:id/review/add", cfg.TicketHandler.ReviewContext)
		tickets.POST("/:id/review/add", cfg.ReviewHandler.Create)
	}
}
