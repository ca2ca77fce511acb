package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
)

// scriptDecoder resolves the beneficiaries of an output into address strings.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder creates a decoder using the chain params of network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// DecodeAddresses derives addresses from the output script so that agents do not depend on
// which address fields a node version reports. Pay-to-pubkey outputs resolve to their
// pay-to-pubkey-hash address. Node reported addresses are used only when the script yields
// none. Duplicates are dropped and nil is returned for outputs without a beneficiary.
func (d *scriptDecoder) DecodeAddresses(vout btcjson.Vout) ([]string, error) {
	var result []string
	if vout.ScriptPubKey.Hex != "" {
		script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("decode script hex: %w", err)
		}
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
		if err != nil {
			return nil, fmt.Errorf("extract script addresses: %w", err)
		}
		for _, addr := range addrs {
			result = appendUnique(result, addr.EncodeAddress())
		}
	}
	if len(result) > 0 {
		return result, nil
	}

	for _, addr := range vout.ScriptPubKey.Addresses {
		result = appendUnique(result, addr)
	}
	if vout.ScriptPubKey.Address != "" {
		result = appendUnique(result, vout.ScriptPubKey.Address)
	}
	return result, nil
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
