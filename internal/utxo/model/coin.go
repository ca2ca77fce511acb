package model

import (
	"fmt"
	"strings"
)

// Coin names the ledger a reporter follows.
type Coin string

// Network names the network of a coin (mainnet, testnet...).
type Network string

// BTC is the only coin the reporter decodes.
var BTC Coin = "BTC"

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)

// UnmarshalFlag normalizes coin names supplied on the command line and rejects coins
// without a block decoder.
func (c *Coin) UnmarshalFlag(value string) error {
	coin := Coin(strings.ToUpper(strings.TrimSpace(value)))
	if coin != BTC {
		return fmt.Errorf("unsupported coin %q", value)
	}
	*c = coin
	return nil
}

// UnmarshalFlag normalizes network names supplied on the command line.
func (n *Network) UnmarshalFlag(value string) error {
	*n = Network(strings.ToLower(strings.TrimSpace(value)))
	return nil
}
