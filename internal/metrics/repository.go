package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var repositoryBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30}

var (
	clickhouseRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "coin", "network", "status"})
	clickhouseRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   repositoryBuckets,
	}, []string{"operation", "coin", "network", "status"})

	postgresRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "coin", "network", "status"})
	postgresRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   repositoryBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// ClickhouseRepository tracks metrics for ClickHouse repository operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	c, n := labels(coin, network)
	s := status(err)
	clickhouseRepositoryRequestsTotal.WithLabelValues(operation, c, n, s).Inc()
	clickhouseRepositoryRequestDuration.WithLabelValues(operation, c, n, s).Observe(time.Since(started).Seconds())
}

// PostgresRepository tracks metrics for PostgreSQL repository operations.
type PostgresRepository struct{}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records duration and status of a repository operation.
func (m PostgresRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	c, n := labels(coin, network)
	s := status(err)
	postgresRepositoryRequestsTotal.WithLabelValues(operation, c, n, s).Inc()
	postgresRepositoryRequestDuration.WithLabelValues(operation, c, n, s).Observe(time.Since(started).Seconds())
}
