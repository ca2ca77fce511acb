// Package reporter runs the ingestion loop that turns ledger blocks into provenance graph
// submissions, and the controller that starts and stops it.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
	"go.uber.org/zap"
)

// Config tunes the reporter. Zero durations use the defaults.
type Config struct {
	Backoff    time.Duration
	RateWindow time.Duration
	// BlockSignal, when set, ends a backoff early on new-block notifications.
	BlockSignal <-chan struct{}
}

// Reporter follows the ledger one block at a time, submits each block's graph fragment
// and checkpoints the committed height.
type Reporter struct {
	logger      *zap.Logger
	source      BlockSource
	sink        GraphSink
	checkpoint  CheckpointStore
	metrics     ReporterMetrics
	monitor     *RateMonitor
	backoff     time.Duration
	blockSignal <-chan struct{}
	wait        func(context.Context, time.Duration, <-chan struct{}) error

	checkpointFailures int
}

// NewReporter builds a Reporter with dependencies.
func NewReporter(
	source BlockSource,
	sink GraphSink,
	checkpoint CheckpointStore,
	metrics ReporterMetrics,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
	cfg Config,
) (*Reporter, error) {
	switch {
	case source == nil:
		return nil, errors.New("reporter block source is required")
	case sink == nil:
		return nil, errors.New("reporter graph sink is required")
	case checkpoint == nil:
		return nil, errors.New("reporter checkpoint store is required")
	case metrics == nil:
		return nil, errors.New("reporter metrics is required")
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)

	return &Reporter{
		logger:      logger,
		source:      source,
		sink:        sink,
		checkpoint:  checkpoint,
		metrics:     metrics,
		monitor:     NewRateMonitor(cfg.RateWindow, metrics, logger.Named("rateMonitor")),
		backoff:     cfg.Backoff,
		blockSignal: cfg.BlockSignal,
		wait:        clock.WaitWithSignal,
	}, nil
}

// Run ingests blocks until the end bound is passed, the context is canceled or a fatal
// error occurs. Reaching the end bound returns nil; cancellation returns the context error.
func (r *Reporter) Run(ctx context.Context, args Args) error {
	next, err := r.resolveStart(ctx, args)
	if err != nil {
		r.logger.Error("cannot resolve start height", zap.Error(err))
		return err
	}
	r.logger.Info("reporter started", zap.Uint64("height", next), zap.Stringer("args", args))

	var predecessor *provenance.Vertex
	for {
		if err := ctx.Err(); err != nil {
			r.logger.Info("reporter stopped", zap.Uint64("next_height", next))
			return err
		}
		if args.End != nil && next > *args.End {
			blocks, txs := r.monitor.Totals()
			r.logger.Info("end height reached",
				zap.Uint64("end", *args.End),
				zap.Uint64("blocks", blocks),
				zap.Uint64("transactions", txs),
			)
			return nil
		}

		block, err := r.fetch(ctx, next)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			if !chain.IsRetryable(err) {
				r.logger.Error("fatal fetch error, stopping", zap.Uint64("height", next), zap.Error(err))
				return fmt.Errorf("fetch block %d: %w", next, err)
			}
			// cancellation during the backoff is observed at the top of the loop
			_ = r.wait(ctx, r.backoff, r.blockSignal)
			continue
		}

		// a fetched block is always finished; stop is observed at the top of the loop
		work := context.WithoutCancel(ctx)
		mapping := provenance.MapBlock(*block, predecessor)
		if err := r.submit(work, mapping); err != nil {
			r.logger.Error("graph submission failed, stopping", zap.Uint64("height", next), zap.Error(err))
			return fmt.Errorf("submit block %d: %w", next, err)
		}
		r.metrics.ObserveHeight(next)
		r.monitor.Record(block.TxCount())

		blockVertex := mapping.Block
		predecessor = &blockVertex

		r.saveCheckpoint(work, next)
		next++
	}
}

// resolveStart returns the first height to fetch. A stored checkpoint H resolves to H itself
// so the committed block is mapped again and the next one can link to it.
func (r *Reporter) resolveStart(ctx context.Context, args Args) (uint64, error) {
	if args.Start != nil {
		return *args.Start, nil
	}

	height, ok, err := r.checkpoint.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}
	if !ok {
		return 0, nil
	}
	r.logger.Info("resuming from checkpoint", zap.Uint64("checkpoint", height))
	return height, nil
}

func (r *Reporter) fetch(ctx context.Context, height uint64) (*model.Block, error) {
	started := time.Now()
	block, err := r.source.Fetch(ctx, height)

	switch {
	case err == nil:
		r.metrics.ObserveFetch(FetchSuccess, started)
		return block, nil
	case ctx.Err() != nil:
	case errors.Is(err, chain.ErrBlockNotFound):
		r.metrics.ObserveFetch(FetchNotFound, started)
		r.logger.Debug("block not available yet, backing off", zap.Uint64("height", height), zap.Duration("sleep", r.backoff))
	case chain.IsRetryable(err):
		r.metrics.ObserveFetch(FetchTransient, started)
		r.logger.Warn("fetch failed, backing off", zap.Uint64("height", height), zap.Duration("sleep", r.backoff), zap.Error(err))
	default:
		r.metrics.ObserveFetch(FetchFatal, started)
	}
	return nil, err
}

func (r *Reporter) submit(ctx context.Context, m provenance.Mapping) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveSubmit(err, len(m.Vertices), len(m.Edges), started)
	}()

	for _, v := range m.Vertices {
		if err = r.sink.PutVertex(ctx, v); err != nil {
			return err
		}
	}
	for _, e := range m.Edges {
		if err = r.sink.PutEdge(ctx, e); err != nil {
			return err
		}
	}
	if f, ok := r.sink.(Flusher); ok {
		if err = f.Flush(ctx); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// saveCheckpoint persists height. Failures are logged and counted but never stop the loop.
func (r *Reporter) saveCheckpoint(ctx context.Context, height uint64) {
	err := r.checkpoint.Save(ctx, height)
	if err != nil {
		r.checkpointFailures++
		r.logger.Error("checkpoint write failed",
			zap.Uint64("height", height),
			zap.Int("consecutive_failures", r.checkpointFailures),
			zap.Error(err),
		)
	} else {
		r.checkpointFailures = 0
	}
	r.metrics.ObserveCheckpoint(err, r.checkpointFailures)
}

func formatHeight(h uint64) string {
	return strconv.FormatUint(h, 10)
}
