package bitcoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/pkg/safe"
	"github.com/tidwall/gjson"
	"go.uber.org/ratelimit"
)

// BlockSource fetches decoded blocks by height from a Bitcoin node RPC.
type BlockSource struct {
	rpc     RPCClient
	decoder ScriptDecoder
	limiter ratelimit.Limiter
	network model.Network
}

// NewBlockSource creates a BlockSource. A nil limiter disables rate limiting.
func NewBlockSource(rpc RPCClient, decoder ScriptDecoder, limiter ratelimit.Limiter, network model.Network) *BlockSource {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &BlockSource{
		rpc:     rpc,
		decoder: decoder,
		limiter: limiter,
		network: network,
	}
}

// Fetch retrieves the block at height with its transactions and cumulative chain work.
func (s *BlockSource) Fetch(ctx context.Context, height uint64) (*model.Block, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("%w: block height %d exceeds rpc limit", chain.ErrFatal, height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.limiter.Take()
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		if isOutOfRange(err) {
			return nil, fmt.Errorf("get block hash at height %d: %w", height, chain.ErrBlockNotFound)
		}
		return nil, fmt.Errorf("get block hash at height %d: %w", height, classify(err))
	}

	s.limiter.Take()
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, classify(err))
	}

	chainwork, err := s.chainwork(hash.String())
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, classify(err))
	}

	block, err := BuildBlockFromVerbose(*src, chainwork, s.network, s.decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrFatal, err)
	}
	return &block, nil
}

// chainwork reads the cumulative work from the verbose block header. Nodes that do not
// report it yield an empty value.
func (s *BlockSource) chainwork(hash string) (string, error) {
	param, err := json.Marshal(hash)
	if err != nil {
		return "", err
	}
	verbose, err := json.Marshal(true)
	if err != nil {
		return "", err
	}

	s.limiter.Take()
	raw, err := s.rpc.RawRequest("getblockheader", []json.RawMessage{param, verbose})
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(raw, "chainwork").String(), nil
}

func isOutOfRange(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	return rpcErr.Code == btcjson.ErrRPCOutOfRange || rpcErr.Code == btcjson.ErrRPCInvalidParameter
}

func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, rpcclient.ErrClientShutdown):
		return fmt.Errorf("%w: %w", chain.ErrFatal, err)
	default:
		return fmt.Errorf("%w: %w", chain.ErrTransient, err)
	}
}
