package model

// Transaction is a transaction together with its ordered inputs and outputs.
type Transaction struct {
	TxID     string
	LockTime uint32
	// CoinbaseValue is set only on the block-reward transaction.
	CoinbaseValue *string
	Vins          []Vin
	Vouts         []Vout
}

// IsCoinbase reports whether the transaction carries a coinbase value.
func (t Transaction) IsCoinbase() bool {
	return t.CoinbaseValue != nil
}

// Vin is a transaction input: either a coinbase marker or a reference to a previous output.
type Vin struct {
	Coinbase bool
	PrevTxID string
	PrevVout uint32
}

// Vout is a transaction output. Value is denominated in satoshis.
type Vout struct {
	Index     uint32
	Value     uint64
	Addresses []string
}
