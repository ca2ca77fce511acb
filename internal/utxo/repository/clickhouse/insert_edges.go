package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const insertEdgesQuery = `
INSERT INTO provenance_edges (
	coin,
	network,
	key,
	kind,
	from_key,
	to_key,
	annotations
) VALUES`

func (r *Repository) insertEdges(ctx context.Context, rows []edgeRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_edges", r.coin, r.network, err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEdgesQuery)
	if err != nil {
		return fmt.Errorf("prepare edges batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(r.coin),
			string(r.network),
			row.key,
			string(row.kind),
			row.from,
			row.to,
			row.annotations,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append edge: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert edges: %w", err)
	}
	return nil
}
