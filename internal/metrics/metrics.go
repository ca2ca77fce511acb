// Package metrics holds the Prometheus collectors of the provenance reporter. Collectors are
// registered on the default registry and exposed by the status server.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"

const namespace = "blockinsight7000"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labels(coin model.Coin, network model.Network) (string, string) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return string(coin), string(network)
}
