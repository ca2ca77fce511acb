// Package clickhouse stores the provenance graph in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
)

// Repository is a graph sink that buffers the vertices and edges of one block and
// writes them on Flush into ReplacingMergeTree tables keyed by content key.
type Repository struct {
	conn    Conn
	metrics Metrics
	coin    model.Coin
	network model.Network

	vertices []vertexRow
	edges    []edgeRow
	pending  map[string]struct{}
}

type vertexRow struct {
	key         string
	kind        provenance.VertexKind
	annotations map[string]string
}

type edgeRow struct {
	key         string
	kind        provenance.EdgeKind
	from        string
	to          string
	annotations map[string]string
}

// NewRepository opens a ClickHouse connection for the given coin and network.
func NewRepository(dsn string, coin model.Coin, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return newRepository(nativeConn{conn: conn}, coin, network, metrics), nil
}

func newRepository(conn Conn, coin model.Coin, network model.Network, metrics Metrics) *Repository {
	return &Repository{
		conn:    conn,
		metrics: metrics,
		coin:    coin,
		network: network,
		pending: make(map[string]struct{}),
	}
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// buffered returns the number of vertices and edges awaiting Flush.
func (r *Repository) buffered() (vertices, edges int) {
	return len(r.vertices), len(r.edges)
}

func (r *Repository) reset() {
	r.vertices = r.vertices[:0]
	r.edges = r.edges[:0]
	clear(r.pending)
}

type nativeConn struct {
	conn driver.Conn
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c nativeConn) Close() error {
	return c.conn.Close()
}

func stringMap(a provenance.Annotations) map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[string(k)] = v
	}
	return out
}
