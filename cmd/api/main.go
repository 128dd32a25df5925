package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leaderboardcache "github.com/ressKim-io/idea-arena/internal/adapter/cache"
	"github.com/ressKim-io/idea-arena/internal/adapter/client"
	"github.com/ressKim-io/idea-arena/internal/adapter/http/router"
	"github.com/ressKim-io/idea-arena/internal/adapter/realtime"
	"github.com/ressKim-io/idea-arena/internal/adapter/repository/memory"
	"github.com/ressKim-io/idea-arena/internal/adapter/repository/postgres"
	"github.com/ressKim-io/idea-arena/internal/concurrency"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/engine"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/cache"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/config"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/database"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/logger"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/scheduler"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

const redisKeyPrefix = "ideaarena"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// stores groups the record store adapters
type stores struct {
	battles     repository.BattleRepository
	scores      repository.ScoreRepository
	players     repository.PlayerRepository
	leaderboard repository.LeaderboardRepository
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize record store
	db, repos, err := openStores(&cfg.Database, log)
	if err != nil {
		return err
	}

	// Initialize Redis (optional, continue without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, using in-process cache", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis", zap.String("address", cfg.Redis.Addr()))
		}
	}

	var rankedCache service.LeaderboardCache
	if redisClient != nil {
		rankedCache = leaderboardcache.NewRedisCache(redisClient, redisKeyPrefix, cfg.Leaderboard.CacheTTL)
	} else {
		rankedCache = leaderboardcache.NewLRUCache(cfg.Leaderboard.CacheSize, cfg.Leaderboard.CacheTTL)
	}

	// Initialize engine
	mode, err := engine.ParseMode(cfg.AI.Mode)
	if err != nil {
		return err
	}
	var generator service.TextGenerator
	if mode == engine.ModeLive {
		chat := client.NewChatClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.RequestsPerMinute)
		generator = client.NewChatGenerator(chat)
	}
	rng := engine.NewTimeSeededRand()
	if cfg.AI.Seed != 0 {
		rng = engine.NewRand(cfg.AI.Seed)
	}
	log.Info("Engine configured", zap.String("mode", string(mode)), zap.String("model", cfg.AI.Model))

	// Initialize usecases
	locks := concurrency.NewLockManager()
	hub := realtime.NewHub(realtime.DefaultBuffer, log)
	players := usecase.NewPlayerUsecase(repos.players)
	leaderboard := usecase.NewLeaderboardUsecase(repos.leaderboard, repos.battles, repos.players, rankedCache, locks, log)
	battles := usecase.NewBattleUsecase(usecase.BattleDeps{
		BattleRepo:  repos.battles,
		ScoreRepo:   repos.scores,
		Players:     players,
		Leaderboard: leaderboard,
		Prompts:     engine.NewPromptGenerator(mode, generator, rng, log),
		Solver:      engine.NewOpponentSolver(mode, generator, rng, log),
		Judge:       engine.NewJudge(mode, generator, rng, log),
		Locks:       locks,
		Notifier:    hub,
		Logger:      log,
	})

	// Periodic leaderboard repair (optional)
	var sched *scheduler.Scheduler
	if cfg.Leaderboard.ReconcileInterval > 0 {
		sched, err = scheduler.New(log)
		if err != nil {
			return err
		}
		if err := sched.AddReconcileJob("leaderboard-reconcile", leaderboard, cfg.Leaderboard.ReconcileInterval, cfg.Leaderboard.ReconcileInterval); err != nil {
			return err
		}
		sched.Start()
		log.Info("Leaderboard reconciler scheduled", zap.Duration("interval", cfg.Leaderboard.ReconcileInterval))
	}

	// Setup router
	r := router.Setup(router.Deps{
		DB:          db,
		Redis:       redisClient,
		Battles:     battles,
		Leaderboard: leaderboard,
		Players:     players,
		Hub:         hub,
		Logger:      log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	// Hijacked event streams are not tracked by Shutdown
	srv.RegisterOnShutdown(hub.Close)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if sched != nil {
		if err := sched.Shutdown(); err != nil {
			log.Warn("Scheduler shutdown failed", zap.Error(err))
		}
	}

	// Close database connection
	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

// openStores returns the configured record store. db is nil for the memory driver.
func openStores(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, *stores, error) {
	if cfg.Driver != "postgres" {
		log.Info("Using in-memory record store")
		return nil, &stores{
			battles:     memory.NewBattleRepository(),
			scores:      memory.NewScoreRepository(),
			players:     memory.NewPlayerRepository(),
			leaderboard: memory.NewLeaderboardRepository(),
		}, nil
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Connected to database")

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations completed")

	return db, &stores{
		battles:     postgres.NewBattleRepository(db),
		scores:      postgres.NewScoreRepository(db),
		players:     postgres.NewPlayerRepository(db),
		leaderboard: postgres.NewLeaderboardRepository(db),
	}, nil
}
