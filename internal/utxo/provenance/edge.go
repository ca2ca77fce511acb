package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// EdgeKind tags the relation carried by an edge.
type EdgeKind string

const (
	WasInformedBy   EdgeKind = "WasInformedBy"
	Used            EdgeKind = "Used"
	WasGeneratedBy  EdgeKind = "WasGeneratedBy"
	WasAttributedTo EdgeKind = "WasAttributedTo"
)

type endpoints struct {
	from, to    VertexKind
	annotations map[Annotation]struct{}
}

var edgeShapes = map[EdgeKind]endpoints{
	WasInformedBy:   {from: Activity, to: Activity},
	Used:            {from: Activity, to: Entity},
	WasGeneratedBy:  {from: Entity, to: Activity, annotations: set(TransactionValue)},
	WasAttributedTo: {from: Entity, to: Agent},
}

// Edge is a directed, optionally annotated relation between two vertices.
type Edge struct {
	Kind        EdgeKind
	From        Vertex
	To          Vertex
	Annotations Annotations
}

// Key returns the content address of the edge: its kind, both endpoint keys and its annotations.
func (e Edge) Key() string {
	h := sha256.New()
	h.Write([]byte(e.Kind))
	h.Write([]byte{'\n'})
	h.Write([]byte(e.From.Key()))
	h.Write([]byte{'\n'})
	h.Write([]byte(e.To.Key()))
	h.Write([]byte{'\n'})
	h.Write(e.Annotations.canonical())
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks that the endpoints and annotations fit the edge kind.
func (e Edge) Validate() error {
	shape, ok := edgeShapes[e.Kind]
	if !ok {
		return fmt.Errorf("unknown edge kind %q", e.Kind)
	}
	if e.From.Kind != shape.from || e.To.Kind != shape.to {
		return fmt.Errorf("%s edge from %s to %s, want %s to %s", e.Kind, e.From.Kind, e.To.Kind, shape.from, shape.to)
	}
	for k := range e.Annotations {
		if _, ok := shape.annotations[k]; !ok {
			return fmt.Errorf("annotation %q not allowed on %s", k, e.Kind)
		}
	}
	return nil
}
