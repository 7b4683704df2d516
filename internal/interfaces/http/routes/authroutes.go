package routes

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimit
}

// SetupAuthRoutes configures signup, login and session routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.POST("/signup", cfg.RateLimit.Limit("signup"), cfg.AuthHandler.SignUp)
	engine.POST("/login", cfg.RateLimit.Limit("login"), cfg.AuthHandler.Login)
	engine.POST("/refresh", cfg.AuthHandler.Refresh)
	engine.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
	engine.POST("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
}
