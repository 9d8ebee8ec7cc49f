package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/infrastructure/fallback"
	"github.com/dragonworlds/results-sync/internal/platform/cache"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
	"github.com/dragonworlds/results-sync/internal/platform/metrics"
)

const defaultResultsTTL = 5 * time.Minute

// championshipFetcher pulls normalized standings for one server-native
// event id. The production implementation is the regattascraper client;
// tests substitute doubles.
type championshipFetcher interface {
	FetchChampionship(ctx context.Context, nativeID string) (*championship.Championship, error)
}

// EventSummary is one syncable event for listings.
type EventSummary struct {
	Alias    string
	NativeID string
	Name     string
}

type ResultsServiceConfig struct {
	Fetcher  championshipFetcher
	Aliases  *championship.AliasTable
	Fallback *fallback.Dataset
	CacheTTL time.Duration
	// DevMode unlocks the force-mock toggle. Outside development the
	// toggle is a no-op and real fetch errors stay errors.
	DevMode   bool
	ForceMock bool
	Logger    *logging.Logger
	Metrics   *metrics.Recorder
}

// ResultsService keeps championship standings in sync with the results
// server. Cache entries are keyed by native event id and live only in
// process memory.
type ResultsService struct {
	fetcher   championshipFetcher
	aliases   *championship.AliasTable
	fallback  *fallback.Dataset
	store     *cache.Store
	devMode   bool
	forceMock atomic.Bool
	logger    *logging.Logger
	metrics   *metrics.Recorder
}

func NewResultsService(cfg ResultsServiceConfig) *ResultsService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	aliases := cfg.Aliases
	if aliases == nil {
		aliases = championship.DefaultAliasTable()
	}
	dataset := cfg.Fallback
	if dataset == nil {
		dataset = fallback.NewDataset()
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultResultsTTL
	}

	service := &ResultsService{
		fetcher:  cfg.Fetcher,
		aliases:  aliases,
		fallback: dataset,
		store:    cache.NewStore(ttl),
		devMode:  cfg.DevMode,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
	if cfg.ForceMock && cfg.DevMode {
		service.forceMock.Store(true)
	}
	return service
}

// GetChampionship returns the standings for an event id or alias. Fresh
// cache entries short-circuit the fetch unless forceRefresh is set. When
// the fetch fails and any cached entry exists, fresh or stale, that entry
// is served; with nothing cached the failure propagates. Real errors never
// turn into fabricated data.
func (s *ResultsService) GetChampionship(ctx context.Context, eventID string, forceRefresh bool) (*championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.GetChampionship")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	nativeID := s.aliases.Native(eventID)

	if s.ForceMockData() {
		s.logger.DebugContext(ctx, "serving bundled championship", "event_id", eventID, "native_id", nativeID)
		s.metrics.RecordSync(nativeID, metrics.OutcomeMock)
		return s.fallback.Championship(nativeID), nil
	}

	if !forceRefresh {
		if cached, ok := s.cachedChampionship(ctx, nativeID); ok {
			s.metrics.RecordSync(nativeID, metrics.OutcomeCacheHit)
			return cached, nil
		}
	}

	fetchStart := time.Now()
	fetched, err := s.fetcher.FetchChampionship(ctx, nativeID)
	s.metrics.ObserveFetchDuration(time.Since(fetchStart).Seconds())
	if err != nil {
		if stale, fetchedAt, ok := s.staleChampionship(ctx, nativeID); ok {
			s.logger.WarnContext(ctx, "results fetch failed, serving last known standings",
				"event_id", eventID,
				"native_id", nativeID,
				"fetched_at", fetchedAt,
				"error", err,
			)
			s.metrics.RecordSync(nativeID, metrics.OutcomeStaleFallback)
			return stale, nil
		}
		s.metrics.RecordSync(nativeID, metrics.OutcomeError)
		return nil, fmt.Errorf("%w: event %s: %w", ErrFetchFailed, eventID, err)
	}

	s.applyBundledMetadata(fetched)
	s.store.Set(ctx, nativeID, fetched.Clone())
	s.metrics.SetCacheEntries(s.store.Len())
	s.metrics.RecordSync(nativeID, metrics.OutcomeNetwork)
	return fetched, nil
}

// ClearCache drops the cached entry for one event id or alias. A fetch
// failure after clearing surfaces as an error; cleared entries are gone,
// not recoverable as stale fallbacks.
func (s *ResultsService) ClearCache(ctx context.Context, eventID string) {
	nativeID := s.aliases.Native(strings.TrimSpace(eventID))
	s.store.Delete(ctx, nativeID)
	s.metrics.SetCacheEntries(s.store.Len())
}

// ClearAllCaches drops every cached entry.
func (s *ResultsService) ClearAllCaches(ctx context.Context) {
	s.store.Clear(ctx)
	s.metrics.SetCacheEntries(0)
}

// GetLastFetchTime reports when an event was last fetched and stored.
// Cleared or never-fetched events report false.
func (s *ResultsService) GetLastFetchTime(ctx context.Context, eventID string) (time.Time, bool) {
	nativeID := s.aliases.Native(strings.TrimSpace(eventID))
	return s.store.FetchedAt(ctx, nativeID)
}

// SetForceMockData toggles serving the bundled dataset instead of live
// fetches. Outside development the call is a recorded no-op. Flipping the
// toggle clears the cache so bundled and live standings never interleave.
func (s *ResultsService) SetForceMockData(ctx context.Context, enabled bool) bool {
	if !s.devMode {
		s.logger.WarnContext(ctx, "force mock toggle ignored outside development", "requested", enabled)
		return false
	}
	previous := s.forceMock.Swap(enabled)
	if previous != enabled {
		s.store.Clear(ctx)
		s.metrics.SetCacheEntries(0)
		s.logger.InfoContext(ctx, "force mock data toggled", "enabled", enabled)
	}
	return true
}

func (s *ResultsService) ForceMockData() bool {
	return s.forceMock.Load()
}

// Events lists the registered events with their bundled names.
func (s *ResultsService) Events() []EventSummary {
	refs := s.aliases.Events()
	out := make([]EventSummary, 0, len(refs))
	for _, ref := range refs {
		summary := EventSummary{Alias: ref.Alias, NativeID: ref.NativeID}
		if meta, ok := s.fallback.Metadata(ref.NativeID); ok {
			summary.Name = meta.Name
		}
		out = append(out, summary)
	}
	return out
}

func (s *ResultsService) cachedChampionship(ctx context.Context, nativeID string) (*championship.Championship, bool) {
	value, ok := s.store.Get(ctx, nativeID)
	if !ok {
		return nil, false
	}
	cached, ok := value.(*championship.Championship)
	if !ok {
		return nil, false
	}
	return cached.Clone(), true
}

func (s *ResultsService) staleChampionship(ctx context.Context, nativeID string) (*championship.Championship, time.Time, bool) {
	value, fetchedAt, ok := s.store.GetStale(ctx, nativeID)
	if !ok {
		return nil, time.Time{}, false
	}
	cached, ok := value.(*championship.Championship)
	if !ok {
		return nil, time.Time{}, false
	}
	return cached.Clone(), fetchedAt, true
}

// applyBundledMetadata backfills descriptive fields the standings payload
// does not carry. Standings themselves are never backfilled.
func (s *ResultsService) applyBundledMetadata(c *championship.Championship) {
	meta, ok := s.fallback.Metadata(c.ID)
	if !ok {
		return
	}
	if strings.TrimSpace(c.Name) == "" {
		c.Name = meta.Name
	}
	if strings.TrimSpace(c.Location) == "" {
		c.Location = meta.Location
	}
	if c.StartDate.IsZero() {
		c.StartDate = meta.StartDate
	}
	if c.EndDate.IsZero() {
		c.EndDate = meta.EndDate
	}
}
