package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "litrevu/internal/application/auth/usecases"
	feedUsecases "litrevu/internal/application/feed/usecases"
	followUsecases "litrevu/internal/application/follow/usecases"
	reviewUsecases "litrevu/internal/application/review/usecases"
	ticketUsecases "litrevu/internal/application/ticket/usecases"
	"litrevu/internal/infrastructure/auth"
	"litrevu/internal/infrastructure/config"
	"litrevu/internal/infrastructure/ratelimit"
	"litrevu/internal/infrastructure/repository"
	"litrevu/internal/infrastructure/storage"
	"litrevu/internal/interfaces/http/handlers"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/interfaces/http/routes"
	"litrevu/internal/shared/db"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	authHandler    *handlers.AuthHandler
	ticketHandler  *handlers.TicketHandler
	reviewHandler  *handlers.ReviewHandler
	followHandler  *handlers.FollowHandler
	feedHandler    *handlers.FeedHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimit
	mediaRoot      string
}

// jwtServiceAdapter bridges the infrastructure JWT service to the token
// port the auth use cases declare.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, username string, rememberMe bool) (*authUsecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, username, rememberMe)
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates the HTTP router with all dependencies. redisClient may
// be nil, in which case rate limiting is disabled.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	mediaStorage, err := storage.NewLocalMediaStorage(cfg.Media.Root, log)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	dto := handlers.NewDTOBuilder(markdown.NewService(), cfg.Media.URLPrefix)

	signUpUC := authUsecases.NewSignUpUseCase(userRepo, hasher, jwtService, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	refreshTokenUC := authUsecases.NewRefreshTokenUseCase(jwtService, log)
	changePasswordUC := authUsecases.NewChangePasswordUseCase(userRepo, hasher, log)
	authHandler := handlers.NewAuthHandler(signUpUC, loginUC, refreshTokenUC, changePasswordUC, dto, cfg.Auth.JWT, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, mediaStorage, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, reviewRepo, userRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, mediaStorage, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, reviewRepo, mediaStorage, txManager, log)
	ticketHandler := handlers.NewTicketHandler(createTicketUC, getTicketUC, updateTicketUC, deleteTicketUC, dto, cfg.Media, log)

	createReviewUC := reviewUsecases.NewCreateReviewUseCase(reviewRepo, ticketRepo, log)
	createTicketWithReviewUC := reviewUsecases.NewCreateTicketWithReviewUseCase(ticketRepo, reviewRepo, txManager, log)
	getReviewUC := reviewUsecases.NewGetReviewUseCase(reviewRepo, ticketRepo, log)
	updateReviewUC := reviewUsecases.NewUpdateReviewUseCase(reviewRepo, log)
	deleteReviewUC := reviewUsecases.NewDeleteReviewUseCase(reviewRepo, log)
	reviewHandler := handlers.NewReviewHandler(createReviewUC, createTicketWithReviewUC, getReviewUC, updateReviewUC, deleteReviewUC, dto, log)

	followUC := followUsecases.NewFollowUserUseCase(followRepo, userRepo, log)
	unfollowUC := followUsecases.NewUnfollowUserUseCase(followRepo, log)
	listFollowsUC := followUsecases.NewListFollowsUseCase(followRepo, userRepo, log)
	followHandler := handlers.NewFollowHandler(followUC, unfollowUC, listFollowsUC, dto, log)

	getFeedUC := feedUsecases.NewGetFeedUseCase(followRepo, ticketRepo, reviewRepo, userRepo, log)
	getOwnPostsUC := feedUsecases.NewGetOwnPostsUseCase(ticketRepo, reviewRepo, userRepo, log)
	feedHandler := handlers.NewFeedHandler(getFeedUC, getOwnPostsUC, dto, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}
	rateLimit := middleware.NewRateLimit(limiter, cfg.RateLimit.RequestsPerMinute, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		reviewHandler:  reviewHandler,
		followHandler:  followHandler,
		feedHandler:    feedHandler,
		authMiddleware: authMiddleware,
		rateLimit:      rateLimit,
		mediaRoot:      mediaStorage.Root(),
	}, nil
}

// SetupRoutes installs the middleware chain and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded ticket images.
	r.engine.Static(r.cfg.Media.URLPrefix, r.mediaRoot)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.rateLimit,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFollowRoutes(r.engine, &routes.FollowRouteConfig{
		FollowHandler:  r.followHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.feedHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
