package routes

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
)

// ReviewRouteConfig holds dependencies for review routes.
type ReviewRouteConfig struct {
	ReviewHandler  *handlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReviewRoutes configures review update and delete. The GET variants
// return the review with its parent ticket for pre-fill and confirmation.
func SetupReviewRoutes(engine *gin.Engine, cfg *ReviewRouteConfig) {
	reviews := engine.Group("/review")
	reviews.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reviews.GET("/:id/update", cfg.ReviewHandler.Get)
		reviews.POST("/:id/update", cfg.ReviewHandler.Update)
		reviews.GET("/:id/delete", cfg.ReviewHandler.Get)
		reviews.POST("/:id/delete", cfg.ReviewHandler.Delete)
	}
}
