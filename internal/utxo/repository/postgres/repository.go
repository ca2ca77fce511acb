// Package postgres stores the provenance graph and the reporter checkpoint in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Metrics records repository operation outcomes.
type Metrics interface {
	Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
}

type dbConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Open connects a pool to dsn and verifies it is reachable.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Repository is a graph sink writing every vertex and edge straight through.
// Conflicting keys are ignored, so resubmission is a no-op.
type Repository struct {
	db      dbConn
	metrics Metrics
	coin    model.Coin
	network model.Network
}

// NewRepository creates a graph sink on pool.
func NewRepository(pool *pgxpool.Pool, coin model.Coin, network model.Network, metrics Metrics) *Repository {
	return newRepository(pool, coin, network, metrics)
}

func newRepository(db dbConn, coin model.Coin, network model.Network, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics, coin: coin, network: network}
}
