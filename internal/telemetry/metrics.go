package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label names
const (
	LabelResult = "result"
	LabelType   = "type"
	LabelName   = "name"
)

// Registry holds every game metric. It is separate from the default
// registry so tests can read it without process-wide collectors.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Game Metrics
var (
	LevelsGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "dungeoncrawl_levels_generated_total",
			Help: "Number of dungeon levels generated",
		},
	)

	TurnsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dungeoncrawl_turns_total",
			Help: "Resolved player turns by result",
		},
		[]string{LabelResult},
	)

	MonstersSlain = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dungeoncrawl_monsters_slain_total",
			Help: "Monsters killed by the player",
		},
		[]string{LabelName},
	)

	ItemsCollected = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dungeoncrawl_items_collected_total",
			Help: "Items picked up by type",
		},
		[]string{LabelType},
	)

	DamageTaken = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "dungeoncrawl_player_damage_taken_total",
			Help: "Total damage dealt to the player by monsters",
		},
	)

	CurrentDepth = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "dungeoncrawl_depth",
			Help: "Current dungeon depth",
		},
	)
)

// MetricsHandler exposes Registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ServeMetrics serves /metrics on addr until ctx is cancelled.
func ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
