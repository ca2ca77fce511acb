// Package model defines the decoded ledger data the provenance reporter maps into a graph.
package model

import "time"

// Block is a fully decoded block as returned by a block source. It is never mutated after a fetch.
type Block struct {
	Coin          Coin
	Network       Network
	Hash          string
	Height        uint64
	Confirmations int64
	Timestamp     time.Time
	Difficulty    float64
	Chainwork     string
	Transactions  []Transaction
}

// TxCount returns the number of transactions carried by the block.
func (b Block) TxCount() int {
	return len(b.Transactions)
}
