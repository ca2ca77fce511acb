// Package bitcoin implements the Bitcoin block source of the provenance reporter.
package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/pkg/safe"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// BuildBlockFromVerbose maps a btcjson block result into a model.Block, transactions included.
func BuildBlockFromVerbose(src btcjson.GetBlockVerboseTxResult, chainwork string, network model.Network, decoder ScriptDecoder) (model.Block, error) {
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height: %w", src.Hash, err)
	}

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		converted, err := BuildTransaction(tx, decoder)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d: %w", height, err)
		}
		txs = append(txs, converted)
	}

	return model.Block{
		Coin:          model.BTC,
		Network:       network,
		Hash:          src.Hash,
		Height:        height,
		Confirmations: src.Confirmations,
		Timestamp:     time.Unix(src.Time, 0).UTC(),
		Difficulty:    src.Difficulty,
		Chainwork:     chainwork,
		Transactions:  txs,
	}, nil
}

// BuildTransaction maps a raw transaction into a model.Transaction. The hex data of a
// coinbase input becomes the transaction's coinbase value.
func BuildTransaction(tx btcjson.TxRawResult, decoder ScriptDecoder) (model.Transaction, error) {
	out := model.Transaction{
		TxID:     tx.Txid,
		LockTime: tx.LockTime,
		Vins:     make([]model.Vin, 0, len(tx.Vin)),
		Vouts:    make([]model.Vout, 0, len(tx.Vout)),
	}

	for _, in := range tx.Vin {
		if in.IsCoinBase() {
			coinbase := in.Coinbase
			out.CoinbaseValue = &coinbase
			out.Vins = append(out.Vins, model.Vin{Coinbase: true})
			continue
		}
		out.Vins = append(out.Vins, model.Vin{PrevTxID: in.Txid, PrevVout: in.Vout})
	}

	for _, vout := range tx.Vout {
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s vout %d value: %w", tx.Txid, vout.N, err)
		}
		addresses, err := decoder.DecodeAddresses(vout)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s vout %d addresses: %w", tx.Txid, vout.N, err)
		}
		out.Vouts = append(out.Vouts, model.Vout{Index: vout.N, Value: value, Addresses: addresses})
	}

	return out, nil
}
