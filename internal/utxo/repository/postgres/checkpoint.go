package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/pkg/safe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loadCheckpointQuery = `
SELECT height FROM reporter_checkpoints
WHERE coin = $1 AND network = $2`

const saveCheckpointQuery = `
INSERT INTO reporter_checkpoints (coin, network, height, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (coin, network) DO UPDATE SET height = EXCLUDED.height, updated_at = EXCLUDED.updated_at`

// Checkpoint keeps one checkpoint row per coin and network.
type Checkpoint struct {
	db      dbConn
	metrics Metrics
	coin    model.Coin
	network model.Network
}

// NewCheckpoint creates a checkpoint store on pool.
func NewCheckpoint(pool *pgxpool.Pool, coin model.Coin, network model.Network, metrics Metrics) *Checkpoint {
	return newCheckpoint(pool, coin, network, metrics)
}

func newCheckpoint(db dbConn, coin model.Coin, network model.Network, metrics Metrics) *Checkpoint {
	return &Checkpoint{db: db, metrics: metrics, coin: coin, network: network}
}

// Load returns the stored height, or ok=false when no row exists yet.
func (c *Checkpoint) Load(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe("load_checkpoint", c.coin, c.network, err, start)
	}()

	var stored int64
	err = c.db.QueryRow(ctx, loadCheckpointQuery, string(c.coin), string(c.network)).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: load checkpoint: %w", chain.ErrStorageUnavailable, err)
	}
	height, err = safe.Uint64(stored)
	if err != nil {
		return 0, false, fmt.Errorf("%w: malformed checkpoint: %w", chain.ErrStorageUnavailable, err)
	}
	return height, true, nil
}

// Save upserts the height for the coin and network.
func (c *Checkpoint) Save(ctx context.Context, height uint64) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe("save_checkpoint", c.coin, c.network, err, start)
	}()

	stored, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("%w: checkpoint height: %w", chain.ErrStorageUnavailable, err)
	}
	if _, err = c.db.Exec(ctx, saveCheckpointQuery, string(c.coin), string(c.network), stored); err != nil {
		return fmt.Errorf("%w: save checkpoint: %w", chain.ErrStorageUnavailable, err)
	}
	return nil
}
