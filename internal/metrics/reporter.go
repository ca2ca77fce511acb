package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reporterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "fetch_total",
		Help:      "Count of block fetches by outcome.",
	}, []string{"coin", "network", "outcome"})

	reporterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of block fetches by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "outcome"})

	reporterSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "submit_total",
		Help:      "Count of block graph submissions.",
	}, []string{"coin", "network", "status"})

	reporterSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "submit_duration_seconds",
		Help:      "Duration of submitting a block's graph fragment.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	reporterVerticesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "vertices_submitted_total",
		Help:      "Count of vertices submitted to the graph sink.",
	}, []string{"coin", "network"})

	reporterEdgesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "edges_submitted_total",
		Help:      "Count of edges submitted to the graph sink.",
	}, []string{"coin", "network"})

	reporterHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "last_height",
		Help:      "Height of the last block submitted.",
	}, []string{"coin", "network"})

	reporterCheckpointTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "checkpoint_writes_total",
		Help:      "Count of checkpoint writes.",
	}, []string{"coin", "network", "status"})

	reporterCheckpointFailures = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "checkpoint_consecutive_failures",
		Help:      "Number of checkpoint writes failed in a row.",
	}, []string{"coin", "network"})

	reporterBlocksPerMinute = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "blocks_per_minute",
		Help:      "Block ingestion rate over the last rate window.",
	}, []string{"coin", "network"})

	reporterTransactionsPerMinute = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reporter",
		Name:      "transactions_per_minute",
		Help:      "Transaction ingestion rate over the last rate window.",
	}, []string{"coin", "network"})
)

// Reporter tracks metrics for the ingestion loop.
type Reporter struct {
	coin    string
	network string
}

// NewReporter constructs a Reporter with defaults.
func NewReporter(coin model.Coin, network model.Network) *Reporter {
	c, n := labels(coin, network)
	return &Reporter{coin: c, network: n}
}

// ObserveFetch records a fetch attempt by outcome.
func (m Reporter) ObserveFetch(outcome string, started time.Time) {
	reporterFetchTotal.WithLabelValues(m.coin, m.network, outcome).Inc()
	reporterFetchDuration.WithLabelValues(m.coin, m.network, outcome).Observe(time.Since(started).Seconds())
}

// ObserveSubmit records the submission of one block's vertices and edges.
func (m Reporter) ObserveSubmit(err error, vertices, edges int, started time.Time) {
	s := status(err)
	reporterSubmitTotal.WithLabelValues(m.coin, m.network, s).Inc()
	reporterSubmitDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		reporterVerticesTotal.WithLabelValues(m.coin, m.network).Add(float64(vertices))
		reporterEdgesTotal.WithLabelValues(m.coin, m.network).Add(float64(edges))
	}
}

// ObserveHeight records the last submitted height.
func (m Reporter) ObserveHeight(height uint64) {
	reporterHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}

// ObserveCheckpoint records a checkpoint write and the current run of failures.
func (m Reporter) ObserveCheckpoint(err error, consecutiveFailures int) {
	reporterCheckpointTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	reporterCheckpointFailures.WithLabelValues(m.coin, m.network).Set(float64(consecutiveFailures))
}

// ObserveRate records the rates of a closed rate window.
func (m Reporter) ObserveRate(blocksPerMinute, transactionsPerMinute float64) {
	reporterBlocksPerMinute.WithLabelValues(m.coin, m.network).Set(blocksPerMinute)
	reporterTransactionsPerMinute.WithLabelValues(m.coin, m.network).Set(transactionsPerMinute)
}
