package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// Pair is one ordered (from, to) route request.
type Pair struct {
	From string
	To   string
}

// Stats summarises a warm-up run.
type Stats struct {
	Computed int64
	Skipped  int64 // already cached
	NoPath   int64
	Failed   int64
	Duration time.Duration
}

// Warmer precomputes routes into the route cache with a pool of workers.
type Warmer struct {
	id      string
	engine  *route.Engine
	cache   *services.RouteCache
	workers int
	log     *slog.Logger
}

// New creates a warmer; workers below one are treated as one.
func New(engine *route.Engine, cache *services.RouteCache, workers int, log *slog.Logger, workerID string) *Warmer {
	if workerID == "" {
		workerID = fmt.Sprintf("warmer-%s", uuid.New().String()[:8])
	}
	if workers < 1 {
		workers = 1
	}
	return &Warmer{
		id:      workerID,
		engine:  engine,
		cache:   cache,
		workers: workers,
		log:     log,
	}
}

// AllPairs lists every ordered pair of distinct rooms of the engine's building.
func AllPairs(engine *route.Engine) []Pair {
	ids := engine.Graph().IDs()
	pairs := make([]Pair, 0, len(ids)*(len(ids)-1))
	for _, from := range ids {
		for _, to := range ids {
			if from != to {
				pairs = append(pairs, Pair{From: from, To: to})
			}
		}
	}
	return pairs
}

// Warm computes and caches the route of every pair that is not cached yet.
// It stops early when ctx ends and returns the context error.
func (w *Warmer) Warm(ctx context.Context, pairs []Pair) (Stats, error) {
	w.log.Info("Warmer starting", "worker_id", w.id, "pairs", len(pairs), "workers", w.workers)
	start := time.Now()

	var computed, skipped, noPath, failed atomic.Int64
	jobs := make(chan Pair)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if _, ok := w.cache.Get(ctx, p.From, p.To); ok {
					skipped.Add(1)
					continue
				}

				res, err := w.engine.FindShortestPath(p.From, p.To)
				switch {
				case errors.Is(err, route.ErrNoPathFound):
					noPath.Add(1)
					continue
				case err != nil:
					w.log.Error("Route computation failed", "worker_id", w.id, "from", p.From, "to", p.To, "error", err)
					failed.Add(1)
					continue
				}

				w.cache.Put(ctx, p.From, p.To, res)
				computed.Add(1)
			}
		}()
	}

	var err error
feed:
	for _, p := range pairs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()

	stats := Stats{
		Computed: computed.Load(),
		Skipped:  skipped.Load(),
		NoPath:   noPath.Load(),
		Failed:   failed.Load(),
		Duration: time.Since(start),
	}
	w.log.Info("Warmer finished",
		"worker_id", w.id,
		"computed", stats.Computed,
		"skipped", stats.Skipped,
		"no_path", stats.NoPath,
		"failed", stats.Failed,
		"duration", stats.Duration)
	return stats, err
}
