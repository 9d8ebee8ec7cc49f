// Command scraperstub runs a local stand-in for the results server. It
// serves the bundled championship dataset in the scraper's wire format so
// the API can be exercised without reaching the real endpoint. Latency and
// failure injection make cache and fallback behavior reproducible.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/infrastructure/fallback"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	latency := flag.Duration("latency", 0, "artificial delay before each response")
	failEvery := flag.Int("fail-every", 0, "return HTTP 500 on every Nth request (0 disables)")
	malformedEvery := flag.Int("malformed-every", 0, "serve a truncated JSON body on every Nth request (0 disables)")
	flag.Parse()

	logger := logging.NewJSON(logging.LevelInfo)
	stub := &stubServer{
		dataset:        fallback.NewDataset(),
		logger:         logger,
		latency:        *latency,
		failEvery:      int64(*failEvery),
		malformedEvery: int64(*malformedEvery),
	}

	srv := &fasthttp.Server{
		Name:         "regatta-scraper-stub",
		Handler:      stub.handle,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("scraper stub starting",
			"addr", *addr,
			"events", stub.dataset.NativeIDs(),
			"latency", latency.String(),
			"fail_every", *failEvery,
			"malformed_every", *malformedEvery,
		)
		if err := srv.ListenAndServe(*addr); err != nil {
			logger.Error("scraper stub failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := srv.Shutdown(); err != nil {
		logger.Error("scraper stub shutdown failed", "error", err)
	}
	logger.Info("scraper stub stopped")
}

type stubServer struct {
	dataset        *fallback.Dataset
	logger         *logging.Logger
	latency        time.Duration
	failEvery      int64
	malformedEvery int64
	requests       atomic.Int64
}

func (s *stubServer) handle(ctx *fasthttp.RequestCtx) {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	n := s.requests.Add(1)
	if s.failEvery > 0 && n%s.failEvery == 0 {
		s.logger.Warn("injecting failure", "request", n)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	if s.malformedEvery > 0 && n%s.malformedEvery == 0 {
		s.logger.Warn("injecting malformed body", "request", n)
		ctx.SetContentType("application/json")
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(`{"eventName":"Asia Pac`)
		return
	}

	if !ctx.IsGet() || string(ctx.Path()) != "/results" {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}

	eventID := string(ctx.QueryArgs().Peek("eventId"))
	if eventID == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		ctx.SetBodyString(`{"error":"eventId is required"}`)
		ctx.SetContentType("application/json")
		return
	}

	payload := toWirePayload(s.dataset.Championship(eventID))

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		s.logger.Error("encode standings", "event_id", eventID, "error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	s.logger.Info("serving standings", "event_id", eventID, "competitors", len(payload.OverallStandings))
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(buf.Bytes())
}

// Wire structs mirror the results server's standings response.
type wirePayload struct {
	EventName        string       `json:"eventName"`
	LastUpdated      string       `json:"lastUpdated,omitempty"`
	OverallStandings []wireRow    `json:"overallStandings"`
	Metadata         wireMetadata `json:"metadata"`
}

type wireMetadata struct {
	TotalRaces       int `json:"totalRaces"`
	CompletedRaces   int `json:"completedRaces"`
	TotalCompetitors int `json:"totalCompetitors"`
}

type wireRow struct {
	Position    int         `json:"position"`
	SailNumber  string      `json:"sailNumber"`
	HelmName    string      `json:"helmName"`
	CrewName    string      `json:"crewName,omitempty"`
	Club        string      `json:"club,omitempty"`
	TotalPoints float64     `json:"totalPoints"`
	RaceScores  []wireScore `json:"raceScores"`
}

type wireScore struct {
	Position    float64 `json:"position"`
	IsDiscarded bool    `json:"isDiscarded,omitempty"`
}

func toWirePayload(c *championship.Championship) wirePayload {
	rows := make([]wireRow, 0, len(c.Competitors))
	for _, competitor := range c.Competitors {
		flags := discardFlags(competitor.RaceResults, competitor.Discards)
		scores := make([]wireScore, len(competitor.RaceResults))
		for i, value := range competitor.RaceResults {
			scores[i] = wireScore{Position: value, IsDiscarded: flags[i]}
		}
		rows = append(rows, wireRow{
			Position:    competitor.Position,
			SailNumber:  competitor.SailNumber,
			HelmName:    competitor.HelmName,
			CrewName:    competitor.CrewName,
			Club:        competitor.YachtClub,
			TotalPoints: competitor.TotalPoints,
			RaceScores:  scores,
		})
	}

	var lastUpdated string
	if !c.LastUpdated.IsZero() {
		lastUpdated = c.LastUpdated.UTC().Format(time.RFC3339)
	}

	return wirePayload{
		EventName:        c.Name,
		LastUpdated:      lastUpdated,
		OverallStandings: rows,
		Metadata: wireMetadata{
			TotalRaces:       c.TotalRaces,
			CompletedRaces:   c.CompletedRaces,
			TotalCompetitors: c.TotalBoats,
		},
	}
}

// discardFlags marks which race scores the bundled discard values belong
// to. Discards are stored as score values in race order, so each value
// claims its first unclaimed occurrence.
func discardFlags(results, discards []float64) []bool {
	flags := make([]bool, len(results))
	next := 0
	for i, value := range results {
		if next < len(discards) && discards[next] == value {
			flags[i] = true
			next++
		}
	}
	return flags
}
