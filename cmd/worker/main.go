package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/classifier"
	"github.com/nikhilbhutani/riskengine/internal/config"
	"github.com/nikhilbhutani/riskengine/internal/llm"
	"github.com/nikhilbhutani/riskengine/internal/queue"
	"github.com/nikhilbhutani/riskengine/internal/queue/workers"
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

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	store := cache.NewStore(rdb, cfg.Cache.TTL)

	gw := llm.NewGateway(cfg.LLM)
	clf := classifier.FromConfig(context.Background(), cfg.Classifier, gw)
	engine := risk.NewEngine(clf)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	registry := queue.NewHandlersRegistry()

	analyzeWorker := workers.NewAnalyzeWorker(engine, store)
	registry.Register(queue.TypeAnalyzeBatch, asynq.HandlerFunc(analyzeWorker.ProcessTask))

	slog.Info("starting worker", "concurrency", 10, "classifier", clf.Name())
	if err := srv.Run(registry.Mux()); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
