// Package memory keeps the provenance graph in process memory, for dry runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
)

// Graph is a graph sink that unifies vertices and edges by content key.
type Graph struct {
	mu       sync.RWMutex
	vertices map[string]provenance.Vertex
	edges    map[string]provenance.Edge
	order    []string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]provenance.Vertex),
		edges:    make(map[string]provenance.Edge),
	}
}

// PutVertex stores v unless a vertex with the same content is present.
func (g *Graph) PutVertex(_ context.Context, v provenance.Vertex) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("put vertex: %w", err)
	}
	key := v.Key()

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[key]; !ok {
		g.vertices[key] = v
	}
	return nil
}

// PutEdge stores e unless an edge with the same content is present. Both endpoints must exist.
func (g *Graph) PutEdge(_ context.Context, e provenance.Edge) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("put edge: %w", err)
	}
	from, to, key := e.From.Key(), e.To.Key(), e.Key()

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("put edge %s: source vertex %s not found", e.Kind, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("put edge %s: target vertex %s not found", e.Kind, to)
	}
	if _, ok := g.edges[key]; !ok {
		g.edges[key] = e
		g.order = append(g.order, key)
	}
	return nil
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// hasVertex reports whether a vertex with the same content is stored.
func (g *Graph) hasVertex(v provenance.Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[v.Key()]
	return ok
}

// Edges returns the stored edges of kind, in first-insertion order.
func (g *Graph) Edges(kind provenance.EdgeKind) []provenance.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []provenance.Edge
	for _, key := range g.order {
		if e := g.edges[key]; e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
