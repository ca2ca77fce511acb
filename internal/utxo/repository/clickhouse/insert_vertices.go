package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const insertVerticesQuery = `
INSERT INTO provenance_vertices (
	coin,
	network,
	key,
	kind,
	annotations
) VALUES`

func (r *Repository) insertVertices(ctx context.Context, rows []vertexRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_vertices", r.coin, r.network, err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertVerticesQuery)
	if err != nil {
		return fmt.Errorf("prepare vertices batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			string(r.coin),
			string(r.network),
			row.key,
			string(row.kind),
			row.annotations,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append vertex: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert vertices: %w", err)
	}
	return nil
}
