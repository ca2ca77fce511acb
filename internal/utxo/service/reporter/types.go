package reporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource fetches fully decoded blocks by height. Errors wrap chain.ErrBlockNotFound or
	// chain.ErrTransient when a retry may succeed and chain.ErrFatal otherwise.
	BlockSource interface {
		Fetch(ctx context.Context, height uint64) (*model.Block, error)
	}
	// GraphSink accepts vertices and edges. Submissions are idempotent by content.
	GraphSink interface {
		PutVertex(ctx context.Context, v provenance.Vertex) error
		PutEdge(ctx context.Context, e provenance.Edge) error
	}
	// Flusher is implemented by sinks that buffer a block's submissions.
	Flusher interface {
		Flush(ctx context.Context) error
	}
	// CheckpointStore persists the height of the last fully committed block.
	CheckpointStore interface {
		Load(ctx context.Context) (height uint64, ok bool, err error)
		Save(ctx context.Context, height uint64) error
	}
	RateMetrics interface {
		ObserveRate(blocksPerMinute, transactionsPerMinute float64)
	}
	ReporterMetrics interface {
		RateMetrics
		ObserveFetch(outcome string, started time.Time)
		ObserveSubmit(err error, vertices, edges int, started time.Time)
		ObserveHeight(height uint64)
		ObserveCheckpoint(err error, consecutiveFailures int)
	}
	Runner interface {
		Run(ctx context.Context, args Args) error
	}
)
