package provenance

import (
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
)

// Mapping is the graph fragment produced for one block.
// Vertices are unique by content key and always precede Edges.
type Mapping struct {
	Vertices []Vertex
	Edges    []Edge
	// Block is the block's own vertex, the predecessor for the next height.
	Block Vertex
}

// BlockVertex builds the Activity vertex of a block.
func BlockVertex(b model.Block) Vertex {
	return Vertex{
		Kind: Activity,
		Annotations: Annotations{
			BlockHash:          b.Hash,
			BlockHeight:        strconv.FormatUint(b.Height, 10),
			BlockConfirmations: strconv.FormatInt(b.Confirmations, 10),
			BlockTime:          strconv.FormatInt(b.Timestamp.Unix(), 10),
			BlockDifficulty:    strconv.FormatFloat(b.Difficulty, 'f', -1, 64),
			BlockChainwork:     b.Chainwork,
		},
	}
}

// TransactionVertex builds the Activity vertex of a transaction.
func TransactionVertex(tx model.Transaction) Vertex {
	a := Annotations{TransactionHash: tx.TxID}
	if tx.LockTime != 0 {
		a[TransactionLocktime] = strconv.FormatUint(uint64(tx.LockTime), 10)
	}
	if tx.IsCoinbase() {
		a[Coinbase] = *tx.CoinbaseValue
	}
	return Vertex{Kind: Activity, Annotations: a}
}

// OutputEntity builds the Entity vertex of output index of txID.
// Produced and consumed outputs share this shape so sinks unify them.
func OutputEntity(txID string, index uint32) Vertex {
	return Vertex{
		Kind: Entity,
		Annotations: Annotations{
			TransactionHash:  txID,
			TransactionIndex: strconv.FormatUint(uint64(index), 10),
		},
	}
}

// AddressAgent builds the Agent vertex of an address.
func AddressAgent(address string) Vertex {
	return Vertex{Kind: Agent, Annotations: Annotations{Address: address}}
}

// FormatValue renders satoshis as BTC with at most 8 decimals and no trailing zeros.
func FormatValue(satoshis uint64) string {
	return strconv.FormatFloat(btcutil.Amount(satoshis).ToBTC(), 'f', -1, 64)
}

type fragment struct {
	vertices []Vertex
	edges    []Edge
	seen     map[string]struct{}
}

func (f *fragment) vertex(v Vertex) Vertex {
	key := "v:" + v.Key()
	if _, ok := f.seen[key]; !ok {
		f.seen[key] = struct{}{}
		f.vertices = append(f.vertices, v)
	}
	return v
}

func (f *fragment) edge(kind EdgeKind, from, to Vertex, annotations Annotations) {
	e := Edge{Kind: kind, From: from, To: to, Annotations: annotations}
	key := "e:" + e.Key()
	if _, ok := f.seen[key]; ok {
		return
	}
	f.seen[key] = struct{}{}
	f.edges = append(f.edges, e)
}

// MapBlock maps a block into vertices and edges. When predecessor is not nil the block
// vertex is linked to it with a WasInformedBy edge. MapBlock performs no I/O.
func MapBlock(b model.Block, predecessor *Vertex) Mapping {
	f := &fragment{seen: make(map[string]struct{})}

	block := f.vertex(BlockVertex(b))
	for _, tx := range b.Transactions {
		txV := f.vertex(TransactionVertex(tx))
		f.edge(WasInformedBy, txV, block, nil)

		for _, in := range tx.Vins {
			if in.Coinbase {
				continue
			}
			f.edge(Used, txV, f.vertex(OutputEntity(in.PrevTxID, in.PrevVout)), nil)
		}

		for _, out := range tx.Vouts {
			entity := f.vertex(OutputEntity(tx.TxID, out.Index))
			f.edge(WasGeneratedBy, entity, txV, Annotations{TransactionValue: FormatValue(out.Value)})
			for _, address := range out.Addresses {
				f.edge(WasAttributedTo, entity, f.vertex(AddressAgent(address)), nil)
			}
		}
	}

	if predecessor != nil {
		f.edge(WasInformedBy, block, *predecessor, nil)
	}

	return Mapping{Vertices: f.vertices, Edges: f.edges, Block: block}
}
