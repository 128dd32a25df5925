package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ressKim-io/idea-arena/internal/adapter/http/handler"
	"github.com/ressKim-io/idea-arena/internal/adapter/http/middleware"
	"github.com/ressKim-io/idea-arena/internal/adapter/realtime"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// Deps holds what the router needs. DB and Redis may be nil when the
// in-memory store and cache are used.
type Deps struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Battles     usecase.BattleUsecase
	Leaderboard usecase.LeaderboardUsecase
	Players     usecase.PlayerUsecase
	Hub         *realtime.Hub
	Logger      *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Deps) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	battleHandler := handler.NewBattleHandler(deps.Battles)
	leaderboardHandler := handler.NewLeaderboardHandler(deps.Leaderboard)
	userHandler := handler.NewUserHandler(deps.Players)

	api := router.Group("/api")
	{
		// Battle routes
		battles := api.Group("/battles")
		{
			battles.POST("", battleHandler.CreateBattle)
			battles.GET("/:id", battleHandler.GetBattle)
			battles.POST("/:id/submit", battleHandler.SubmitSolution)
			battles.GET("/:id/results", battleHandler.GetResults)
			if deps.Hub != nil {
				eventsHandler := handler.NewEventsHandler(deps.Battles, deps.Hub, deps.Logger)
				battles.GET("/:id/events", eventsHandler.StreamBattle)
			}
		}

		// Leaderboard routes
		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		api.GET("/leaderboard/:period", leaderboardHandler.GetLeaderboard)

		// User routes
		api.POST("/users", userHandler.CreateUser)
	}

	return router
}
