package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

const defaultPrefetchWorkers = 4

type PrefetchResult struct {
	Requested  int   `json:"requested"`
	Succeeded  int   `json:"succeeded"`
	Failed     int   `json:"failed"`
	DurationMs int64 `json:"duration_ms"`
}

// prefetchSyncer is the slice of ResultsService the prefetcher needs.
type prefetchSyncer interface {
	GetChampionship(ctx context.Context, eventID string, forceRefresh bool) (*championship.Championship, error)
	Events() []EventSummary
}

// PrefetchService warms the standings cache for every registered event so
// interactive reads land on fresh entries.
type PrefetchService struct {
	syncer     prefetchSyncer
	maxWorkers int
	logger     *logging.Logger
}

func NewPrefetchService(syncer prefetchSyncer, maxWorkers int, logger *logging.Logger) *PrefetchService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers < 1 {
		maxWorkers = defaultPrefetchWorkers
	}
	return &PrefetchService{
		syncer:     syncer,
		maxWorkers: maxWorkers,
		logger:     logger.With("component", "prefetch"),
	}
}

// PrefetchAll force-refreshes every registered event through a bounded
// worker pool. Individual fetch failures are counted, not fatal; stale
// entries stay serveable until a refresh lands.
func (s *PrefetchService) PrefetchAll(ctx context.Context) (PrefetchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrefetchService.PrefetchAll")
	defer span.End()

	events := s.syncer.Events()
	if len(events) == 0 {
		return PrefetchResult{}, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(events) {
		workerCount = len(events)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return PrefetchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	var succeeded, failed atomic.Int32
	var workers sync.WaitGroup
	for _, event := range events {
		event := event
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if _, fetchErr := s.syncer.GetChampionship(ctx, event.NativeID, true); fetchErr != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "prefetch failed", "event", event.Alias, "native_id", event.NativeID, "error", fetchErr)
				return
			}
			succeeded.Add(1)
		}); err != nil {
			workers.Done()
			return PrefetchResult{}, fmt.Errorf("submit prefetch task: %w", err)
		}
	}
	workers.Wait()

	result := PrefetchResult{
		Requested:  len(events),
		Succeeded:  int(succeeded.Load()),
		Failed:     int(failed.Load()),
		DurationMs: time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "prefetch cycle finished",
		"requested", result.Requested,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}
