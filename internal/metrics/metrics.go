// Package metrics provides Prometheus metrics for card export runs.
// A run writes them once to a textfile for the node-exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline Metrics
	CardsExportedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cgs_cards_exported_total",
			Help: "Total number of cards normalized and exported",
		},
		[]string{"game"},
	)

	CardsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cgs_cards_skipped_total",
			Help: "Total number of input records that produced no card",
		},
		[]string{"game", "reason"}, // reason: "unparsed", "fetch", "normalize"
	)

	FetchRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cgs_fetch_retries_total",
			Help: "Lookups retried with an alternate key",
		},
		[]string{"game"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cgs_fetch_duration_seconds",
			Help:    "Time taken to fetch one raw card record, retries included",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"game"},
	)

	// Provider Metrics
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cgs_provider_requests_total",
			Help: "HTTP requests made to card data providers",
		},
		[]string{"provider", "status"}, // status: HTTP status code or "error"
	)

	// Run Metrics
	LastRunCards = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cgs_last_run_cards",
			Help: "Number of cards written by the last run",
		},
		[]string{"game"},
	)

	LastRunTimestamp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cgs_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		},
		[]string{"game"},
	)
)

// WriteTextfile writes every registered metric to path in the text exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
