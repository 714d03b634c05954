// Package metrics exposes Prometheus counters for the pick and search
// endpoints.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Pick outcomes.
const (
	OutcomeHit      = "hit"      // hash-derived code resolved directly
	OutcomeFallback = "fallback" // code missing, arbitrary record substituted
	OutcomeError    = "error"    // store empty or unreachable
)

var (
	picksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dailydewey_picks_total",
			Help: "Total daily pick requests by outcome",
		},
		[]string{"outcome"},
	)
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dailydewey_searches_total",
			Help: "Total search requests by outcome",
		},
		[]string{"outcome"},
	)

	initOnce sync.Once
)

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(picksTotal, searchesTotal)
	})
}

// RecordPick records one daily pick request outcome.
func RecordPick(outcome string) {
	picksTotal.WithLabelValues(outcome).Inc()
}

// RecordSearch records one search request outcome.
func RecordSearch(outcome string) {
	searchesTotal.WithLabelValues(outcome).Inc()
}
