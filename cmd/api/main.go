package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/room-finder/internal/config"
	"github.com/jwebster45206/room-finder/internal/handlers"
	"github.com/jwebster45206/room-finder/internal/logger"
	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/internal/storage"
	"github.com/jwebster45206/room-finder/pkg/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Room Finder API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"building_file", cfg.BuildingFile,
		"cache_enabled", cfg.CacheEnabled)

	store := storage.NewFileStore(cfg.DataDir, log)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	graph, err := storage.LoadGraph(loadCtx, store, cfg.BuildingFile)
	if err != nil {
		if errors.Is(err, storage.ErrBuildingNotFound) {
			if available, listErr := store.ListBuildings(loadCtx); listErr == nil {
				log.Info("Available buildings", "buildings", available)
			}
		}
		loadCancel()
		log.Error("Failed to load building", "error", err, "building_file", cfg.BuildingFile)
		os.Exit(1)
	}
	loadCancel()
	log.Info("Building loaded",
		"name", graph.Name(),
		"rooms", graph.Len(),
		"floors", len(graph.Floors()))

	engine := route.NewEngine(graph)

	var cache services.Cache
	var routeCache *services.RouteCache
	if cfg.CacheEnabled {
		redis, err := services.NewRedisService(cfg.RedisURL, log)
		if err != nil {
			log.Error("Invalid Redis configuration", "error", err)
			os.Exit(1)
		}

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = redis.WaitForConnection(pingCtx)
		pingCancel()
		if err != nil {
			log.Warn("Redis unavailable, route caching disabled", "error", err)
			_ = redis.Close()
		} else {
			log.Info("Cache connection established successfully")
			cache = redis
			routeCache = services.NewRouteCache(redis, graph.Name(), cfg.RouteCacheTTL, log)
		}
	}

	handler := handlers.NewRouter(engine, routeCache, cfg.NearbyMaxDistance, log)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Error("Error closing cache connection", "error", err)
		}
	}

	log.Info("Server exited")
}
