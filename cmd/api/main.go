package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nikhilbhutani/riskengine/internal/api"
	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/classifier"
	"github.com/nikhilbhutani/riskengine/internal/config"
	"github.com/nikhilbhutani/riskengine/internal/llm"
	"github.com/nikhilbhutani/riskengine/internal/queue"
	"github.com/nikhilbhutani/riskengine/internal/risk"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Redis connection (optional — analysis works without the cache)
	var store *cache.Store
	var queueClient *queue.Client
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, running without cache and batch analysis", "error", err)
	} else {
		store = cache.NewStore(rdb, cfg.Cache.TTL)
		queueClient = queue.NewClient(cfg.Redis)
		defer queueClient.Close()
	}
	defer rdb.Close()

	// Classifier: either comes up or the engine runs heuristics-only.
	gw := llm.NewGateway(cfg.LLM)
	clf := classifier.FromConfig(ctx, cfg.Classifier, gw)
	engine := risk.NewEngine(clf)

	router := api.NewRouter(cfg, engine, store, queueClient)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting API server", "addr", cfg.Addr(), "classifier", clf.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
