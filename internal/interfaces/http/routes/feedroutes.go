package routes

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
)

// FeedRouteConfig holds dependencies for feed routes.
type FeedRouteConfig struct {
	FeedHandler    *handlers.FeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFeedRoutes configures the feed and own-posts pages. The full feed
// lives at the root path, matching the site's landing page.
func SetupFeedRoutes(engine *gin.Engine, cfg *FeedRouteConfig) {
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	engine.GET("/", requireAuth, cfg.FeedHandler.Feed)
	engine.GET("/posts", requireAuth, cfg.FeedHandler.OwnPosts)
}
