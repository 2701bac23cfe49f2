package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))

	redisService, err := NewRedisService(mr.Addr(), logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis service: %v", err)
	}

	t.Cleanup(func() {
		_ = redisService.Close()
		mr.Close()
	})
	return redisService, mr
}

func TestRedisService_Basic(t *testing.T) {
	redisService, _ := setupTestRedis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisService.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	key := "test:key:123"
	value := "test value"

	if err := redisService.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	retrievedValue, err := redisService.Get(ctx, key)
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if retrievedValue != value {
		t.Errorf("Expected '%s', got '%s'", value, retrievedValue)
	}

	if err := redisService.Del(ctx, key); err != nil {
		t.Fatalf("Failed to delete key: %v", err)
	}

	// Get on a missing key is not an error
	retrievedValue, err = redisService.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get on missing key returned error: %v", err)
	}
	if retrievedValue != "" {
		t.Errorf("Expected empty string for missing key, got '%s'", retrievedValue)
	}
}

func TestRedisService_Expiration(t *testing.T) {
	redisService, mr := setupTestRedis(t)
	ctx := context.Background()

	if err := redisService.Set(ctx, "route:expiring", "x", time.Minute); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	value, err := redisService.Get(ctx, "route:expiring")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("Expected key to expire, got '%s'", value)
	}
}

func TestRedisService_URL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	svc, err := NewRedisService("redis://"+mr.Addr(), logger)
	if err != nil {
		t.Fatalf("Failed to create redis service from URL: %v", err)
	}
	defer svc.Close()

	if err := svc.WaitForConnection(context.Background()); err != nil {
		t.Fatalf("WaitForConnection failed: %v", err)
	}

	if _, err := NewRedisService("redis://localhost:6379/notadb", logger); err == nil {
		t.Error("Expected error for malformed redis URL")
	}
}

func TestRedisService_PingFailsWhenServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	redisService, err := NewRedisService(mr.Addr(), logger)
	if err != nil {
		t.Fatalf("Failed to create redis service: %v", err)
	}
	defer redisService.Close()

	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := redisService.Ping(ctx); err == nil {
		t.Error("Expected ping to fail after server shutdown")
	}
}
