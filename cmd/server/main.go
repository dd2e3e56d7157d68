package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/auth"
	"github.com/cloudcanvas/compliance-canvas/internal/cache"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/config"
	"github.com/cloudcanvas/compliance-canvas/internal/controller"
	"github.com/cloudcanvas/compliance-canvas/internal/demo"
	"github.com/cloudcanvas/compliance-canvas/internal/realtime"
	"github.com/cloudcanvas/compliance-canvas/internal/server"
	"github.com/cloudcanvas/compliance-canvas/internal/store"
)

// Version information
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	// A local .env is optional
	godotenv.Load()

	logger := initLogger()
	defer logger.Sync()

	if showVersion {
		logger.Info("Cloud Compliance Canvas",
			zap.String("version", Version),
			zap.String("git_commit", GitCommit),
			zap.String("build_time", BuildTime))
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Bool("demo_default", cfg.Demo.Default))

	// Session state with persisted preferences
	persister := store.NewFilePersister(cfg.Store.PersistPath)
	sessionStore := store.New(persister, store.Snapshot{
		DemoMode:      cfg.Demo.Default,
		CurrentRegion: "us-east-1",
	}, logger)

	// Upstream API client, authorized by the session's upstream token
	apiClient := client.New(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout(), logger,
		client.WithTokenSource(sessionStore.UpstreamToken))

	// Demo data generator, seedable for reproducible walkthroughs
	generator := demo.New(cfg.Demo.Seed)

	// Optional Redis page cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, page cache disabled", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}
	pageCache := cache.New(redisClient, cfg.Redis.TTL(), logger)

	authManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime(), logger)
	hub := realtime.NewHub(logger)

	ctrl := controller.New(apiClient, generator, sessionStore, pageCache, logger,
		controller.WithTrendDays(cfg.Demo.TrendDays),
		controller.WithOnUpdate(func(page controller.Page, state controller.PageState) {
			hub.BroadcastPageUpdate(string(page), state)
		}))
	defer ctrl.Close()

	srv := server.New(cfg, logger, server.Dependencies{
		Controller: ctrl,
		Store:      sessionStore,
		Auth:       authManager,
		Hub:        hub,
		API:        apiClient,
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	hub.Close()

	logger.Info("Server stopped")
}

// initLogger initializes the application logger
func initLogger() *zap.Logger {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	var logger *zap.Logger
	var err error

	if env == "production" {
		logConfig := zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		logger, err = logConfig.Build()
	} else {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		logger, err = logConfig.Build()
	}

	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	return logger
}
