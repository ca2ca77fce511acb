// Package provenance maps decoded blocks into a provenance graph of typed vertices and edges.
package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// VertexKind tags the variant of a vertex.
type VertexKind string

const (
	// Activity is a temporal action: blocks and transactions.
	Activity VertexKind = "Activity"
	// Entity is a piece of data: transaction outputs, produced or consumed.
	Entity VertexKind = "Entity"
	// Agent is a responsible actor: addresses.
	Agent VertexKind = "Agent"
)

// Annotation is a key of the closed annotation enumeration.
type Annotation string

const (
	BlockHash           Annotation = "blockHash"
	BlockHeight         Annotation = "blockHeight"
	BlockConfirmations  Annotation = "blockConfirmations"
	BlockTime           Annotation = "blockTime"
	BlockDifficulty     Annotation = "blockDifficulty"
	BlockChainwork      Annotation = "blockChainwork"
	TransactionHash     Annotation = "transactionHash"
	TransactionLocktime Annotation = "transactionLocktime"
	Coinbase            Annotation = "coinbase"
	TransactionIndex    Annotation = "transactionIndex"
	TransactionValue    Annotation = "transactionValue"
	Address             Annotation = "address"
)

var vertexAnnotations = map[VertexKind]map[Annotation]struct{}{
	Activity: set(BlockHash, BlockHeight, BlockConfirmations, BlockTime, BlockDifficulty, BlockChainwork,
		TransactionHash, TransactionLocktime, Coinbase),
	Entity: set(TransactionHash, TransactionIndex),
	Agent:  set(Address),
}

func set(keys ...Annotation) map[Annotation]struct{} {
	m := make(map[Annotation]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

// Annotations maps annotation keys to their string values.
type Annotations map[Annotation]string

// canonical renders annotations sorted by key, one `key=value` per line.
func (a Annotations) canonical() []byte {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var buf []byte
	for _, k := range keys {
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = append(buf, a[Annotation(k)]...)
		buf = append(buf, '\n')
	}
	return buf
}

// Vertex is an annotated graph node. Its identity is its kind plus the full annotation set.
type Vertex struct {
	Kind        VertexKind
	Annotations Annotations
}

// Key returns the content address of the vertex.
func (v Vertex) Key() string {
	h := sha256.New()
	h.Write([]byte(v.Kind))
	h.Write([]byte{'\n'})
	h.Write(v.Annotations.canonical())
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks the vertex kind and that every annotation belongs to the kind's enumeration.
func (v Vertex) Validate() error {
	allowed, ok := vertexAnnotations[v.Kind]
	if !ok {
		return fmt.Errorf("unknown vertex kind %q", v.Kind)
	}
	if len(v.Annotations) == 0 {
		return fmt.Errorf("%s vertex without annotations", v.Kind)
	}
	for k := range v.Annotations {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("annotation %q not allowed on %s", k, v.Kind)
		}
	}
	return nil
}

// Get returns the value of an annotation.
func (v Vertex) Get(key Annotation) (string, bool) {
	value, ok := v.Annotations[key]
	return value, ok
}
