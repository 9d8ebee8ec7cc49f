package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

type fakeSyncer struct {
	mu       sync.Mutex
	events   []EventSummary
	calls    map[string]int
	refresh  []bool
	failOn map[string]error
}

func newFakeSyncer(events []EventSummary) *fakeSyncer {
	return &fakeSyncer{
		events:   events,
		calls:    make(map[string]int),
		failOn: make(map[string]error),
	}
}

func (f *fakeSyncer) GetChampionship(_ context.Context, eventID string, forceRefresh bool) (*championship.Championship, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[eventID]++
	f.refresh = append(f.refresh, forceRefresh)
	if err, ok := f.failOn[eventID]; ok {
		return nil, err
	}
	return &championship.Championship{ID: eventID}, nil
}

func (f *fakeSyncer) Events() []EventSummary {
	return f.events
}

func TestPrefetchService_PrefetchAll(t *testing.T) {
	t.Parallel()

	syncer := newFakeSyncer([]EventSummary{
		{Alias: "gold-cup-2025", NativeID: "13239"},
		{Alias: "asia-pacific-2026", NativeID: "13241"},
		{Alias: "world-championship-2026", NativeID: "13242"},
	})
	syncer.failOn["13242"] = errors.New("scraper down")

	service := NewPrefetchService(syncer, 2, logging.NewNop())
	result, err := service.PrefetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	syncer.mu.Lock()
	defer syncer.mu.Unlock()
	assert.Equal(t, 1, syncer.calls["13239"])
	assert.Equal(t, 1, syncer.calls["13241"])
	assert.Equal(t, 1, syncer.calls["13242"])
	for _, forced := range syncer.refresh {
		assert.True(t, forced, "prefetch must bypass fresh cache entries")
	}
}

func TestPrefetchService_NoEvents(t *testing.T) {
	t.Parallel()

	service := NewPrefetchService(newFakeSyncer(nil), 4, logging.NewNop())
	result, err := service.PrefetchAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Requested)
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
}
