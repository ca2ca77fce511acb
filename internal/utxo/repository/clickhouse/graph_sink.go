package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
)

// PutVertex buffers a vertex until the next Flush.
func (r *Repository) PutVertex(_ context.Context, v provenance.Vertex) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("put vertex: %w", err)
	}
	key := v.Key()
	if _, ok := r.pending["v:"+key]; ok {
		return nil
	}
	r.pending["v:"+key] = struct{}{}
	r.vertices = append(r.vertices, vertexRow{key: key, kind: v.Kind, annotations: stringMap(v.Annotations)})
	return nil
}

// PutEdge buffers an edge until the next Flush.
func (r *Repository) PutEdge(_ context.Context, e provenance.Edge) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("put edge: %w", err)
	}
	key := e.Key()
	if _, ok := r.pending["e:"+key]; ok {
		return nil
	}
	r.pending["e:"+key] = struct{}{}
	r.edges = append(r.edges, edgeRow{
		key:         key,
		kind:        e.Kind,
		from:        e.From.Key(),
		to:          e.To.Key(),
		annotations: stringMap(e.Annotations),
	})
	return nil
}

// Flush writes buffered vertices, then buffered edges. The buffer is cleared whether or not
// the write succeeds.
func (r *Repository) Flush(ctx context.Context) error {
	defer r.reset()

	if err := r.insertVertices(ctx, r.vertices); err != nil {
		return err
	}
	return r.insertEdges(ctx, r.edges)
}
