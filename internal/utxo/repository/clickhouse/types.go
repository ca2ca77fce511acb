package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}

	// Batch is the part of a ClickHouse batch the repository appends rows to.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	// Conn prepares insert batches.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
)
