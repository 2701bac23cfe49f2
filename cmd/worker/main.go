package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/room-finder/internal/config"
	"github.com/jwebster45206/room-finder/internal/logger"
	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/internal/storage"
	"github.com/jwebster45206/room-finder/internal/worker"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// The worker fills the route cache with every route of the configured
// building and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Room Finder cache warmer",
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL,
		"workers", cfg.WarmWorkers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	graph, err := storage.LoadGraph(ctx, storage.NewFileStore(cfg.DataDir, log), cfg.BuildingFile)
	if err != nil {
		log.Error("Failed to load building", "error", err, "building_file", cfg.BuildingFile)
		os.Exit(1)
	}

	redis, err := services.NewRedisService(cfg.RedisURL, log)
	if err != nil {
		log.Error("Invalid Redis configuration", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			log.Error("Error closing cache connection", "error", err)
		}
	}()

	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Minute)
	err = redis.WaitForConnection(waitCtx)
	waitCancel()
	if err != nil {
		log.Error("Failed to connect to cache", "error", err)
		os.Exit(1)
	}

	engine := route.NewEngine(graph)
	cache := services.NewRouteCache(redis, graph.Name(), cfg.RouteCacheTTL, log)
	warmer := worker.New(engine, cache, cfg.WarmWorkers, log, "")

	if _, err := warmer.Warm(ctx, worker.AllPairs(engine)); err != nil {
		log.Warn("Cache warm-up interrupted", "error", err)
	}
}
