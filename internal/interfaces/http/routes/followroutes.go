package routes

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
)

// FollowRouteConfig holds dependencies for subscription routes.
type FollowRouteConfig struct {
	FollowHandler  *handlers.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFollowRoutes configures the follows page and its mutations.
func SetupFollowRoutes(engine *gin.Engine, cfg *FollowRouteConfig) {
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	engine.GET("/follows", requireAuth, cfg.FollowHandler.List)
	engine.POST("/follower/add", requireAuth, cfg.FollowHandler.Follow)
	engine.POST("/follower/:id/delete", requireAuth, cfg.FollowHandler.Unfollow)
}
