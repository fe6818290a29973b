package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts route searches by result
	// Labels: "done", "no_path", "aborted", "unresolvable", "error"
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "routeplanner_searches_total",
		Help: "Total route searches by result",
	}, []string{"result"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeplanner_search_duration_seconds",
		Help:    "Route search duration",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeplanner_search_expanded_nodes",
		Help:    "Nodes expanded per route search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)

// searchResult maps a search error to its metric label
func searchResult(err error) string {
	switch {
	case err == nil:
		return "done"
	case errors.Is(err, ErrNoPathFound):
		return "no_path"
	case errors.Is(err, ErrSearchAborted):
		return "aborted"
	case errors.Is(err, ErrUnresolvableCoordinate):
		return "unresolvable"
	default:
		return "error"
	}
}

func observeSearch(err error, elapsed time.Duration, stats SearchStats) {
	searchTotal.WithLabelValues(searchResult(err)).Inc()
	searchDuration.Observe(elapsed.Seconds())
	searchExpanded.Observe(float64(stats.Expanded))
}
