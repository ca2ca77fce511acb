package reporter

import (
	"time"

	"go.uber.org/zap"
)

// RateReport summarizes a closed rate window.
type RateReport struct {
	Elapsed               time.Duration
	BlocksPerMinute       float64
	TransactionsPerMinute float64
	TotalBlocks           uint64
	TotalTransactions     uint64
}

// RateMonitor counts processed blocks and transactions and reports per-minute rates
// each time the window elapses. It is used from a single goroutine.
type RateMonitor struct {
	logger  *zap.Logger
	metrics RateMetrics
	window  time.Duration
	now     func() time.Time

	windowStart  time.Time
	windowBlocks uint64
	windowTxs    uint64
	totalBlocks  uint64
	totalTxs     uint64
}

// NewRateMonitor creates a monitor whose first window starts now.
func NewRateMonitor(window time.Duration, metrics RateMetrics, logger *zap.Logger) *RateMonitor {
	if window <= 0 {
		window = defaultRateWindow
	}
	m := &RateMonitor{
		logger:  logger,
		metrics: metrics,
		window:  window,
		now:     time.Now,
	}
	m.windowStart = m.now()
	return m
}

// Record counts one block with txs transactions. When the window has elapsed it logs and
// returns the rates of the window, then starts a new one.
func (m *RateMonitor) Record(txs int) (RateReport, bool) {
	m.windowBlocks++
	m.totalBlocks++
	m.windowTxs += uint64(txs)
	m.totalTxs += uint64(txs)

	now := m.now()
	elapsed := now.Sub(m.windowStart)
	if elapsed <= m.window {
		return RateReport{}, false
	}

	minutes := elapsed.Minutes()
	report := RateReport{
		Elapsed:               elapsed,
		BlocksPerMinute:       float64(m.windowBlocks) / minutes,
		TransactionsPerMinute: float64(m.windowTxs) / minutes,
		TotalBlocks:           m.totalBlocks,
		TotalTransactions:     m.totalTxs,
	}

	m.logger.Info("ingestion rate",
		zap.Float64("blocks_per_minute", report.BlocksPerMinute),
		zap.Float64("transactions_per_minute", report.TransactionsPerMinute),
		zap.Uint64("total_blocks", report.TotalBlocks),
		zap.Uint64("total_transactions", report.TotalTransactions),
	)
	m.metrics.ObserveRate(report.BlocksPerMinute, report.TransactionsPerMinute)

	m.windowStart = now
	m.windowBlocks = 0
	m.windowTxs = 0
	return report, true
}

// Totals returns lifetime counts.
func (m *RateMonitor) Totals() (blocks, transactions uint64) {
	return m.totalBlocks, m.totalTxs
}
