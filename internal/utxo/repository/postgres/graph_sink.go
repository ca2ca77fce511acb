package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
)

const insertVertexQuery = `
INSERT INTO provenance_vertices (key, coin, network, kind, annotations)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (coin, network, key) DO NOTHING`

const insertEdgeQuery = `
INSERT INTO provenance_edges (key, coin, network, kind, from_key, to_key, annotations)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (coin, network, key) DO NOTHING`

// PutVertex inserts a vertex unless the coin and network already hold its content key.
func (r *Repository) PutVertex(ctx context.Context, v provenance.Vertex) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_vertex", r.coin, r.network, err, start)
	}()

	if err = v.Validate(); err != nil {
		return fmt.Errorf("put vertex: %w", err)
	}
	if _, err = r.db.Exec(ctx, insertVertexQuery,
		v.Key(),
		string(r.coin),
		string(r.network),
		string(v.Kind),
		annotationsJSON(v.Annotations),
	); err != nil {
		return fmt.Errorf("insert vertex: %w", err)
	}
	return nil
}

// PutEdge inserts an edge unless the coin and network already hold its content key.
// Both endpoints must have been put before.
func (r *Repository) PutEdge(ctx context.Context, e provenance.Edge) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_edge", r.coin, r.network, err, start)
	}()

	if err = e.Validate(); err != nil {
		return fmt.Errorf("put edge: %w", err)
	}
	if _, err = r.db.Exec(ctx, insertEdgeQuery,
		e.Key(),
		string(r.coin),
		string(r.network),
		string(e.Kind),
		e.From.Key(),
		e.To.Key(),
		annotationsJSON(e.Annotations),
	); err != nil {
		return fmt.Errorf("insert edge: %w", err)
	}
	return nil
}

func annotationsJSON(a provenance.Annotations) map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[string(k)] = v
	}
	return out
}
