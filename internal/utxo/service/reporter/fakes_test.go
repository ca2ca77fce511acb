package reporter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/provenance"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/repository/memory"
)

func testBlock(height uint64) *model.Block {
	coinbase := fmt.Sprintf("cb%d", height)
	return &model.Block{
		Coin:          model.BTC,
		Network:       model.Regtest,
		Hash:          fmt.Sprintf("block-%d", height),
		Height:        height,
		Confirmations: 6,
		Timestamp:     time.Unix(1_600_000_000+int64(height)*600, 0),
		Difficulty:    1,
		Chainwork:     "00",
		Transactions: []model.Transaction{{
			TxID:          fmt.Sprintf("tx-%d", height),
			CoinbaseValue: &coinbase,
			Vins:          []model.Vin{{Coinbase: true}},
			Vouts:         []model.Vout{
				{Index: 0, Value: 5_000_000_000, Addresses: []string{"A1"}},
				{Index: 1, Value: 0, Addresses: []string{"A2"}},
			},
		}},
	}
}

// ledger serves testBlock for heights up to tip and ErrBlockNotFound beyond.
type ledger struct {
	mu      sync.Mutex
	tip     uint64
	fetched []uint64
	errs    map[uint64][]error
}

func newLedger(tip uint64) *ledger {
	return &ledger{tip: tip, errs: make(map[uint64][]error)}
}

func (l *ledger) failNext(height uint64, errs ...error) {
	l.errs[height] = append(l.errs[height], errs...)
}

func (l *ledger) Fetch(_ context.Context, height uint64) (*model.Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fetched = append(l.fetched, height)
	if queued := l.errs[height]; len(queued) > 0 {
		l.errs[height] = queued[1:]
		return nil, queued[0]
	}
	if height > l.tip {
		return nil, fmt.Errorf("height %d: %w", height, chain.ErrBlockNotFound)
	}
	return testBlock(height), nil
}

func (l *ledger) Fetched() []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]uint64(nil), l.fetched...)
}

type memCheckpoint struct {
	height  uint64
	ok      bool
	loadErr error
	saveErr error
	saves   []uint64
	loads   int
}

func (c *memCheckpoint) Load(context.Context) (uint64, bool, error) {
	c.loads++
	return c.height, c.ok, c.loadErr
}

func (c *memCheckpoint) Save(_ context.Context, height uint64) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.height, c.ok = height, true
	c.saves = append(c.saves, height)
	return nil
}

type flushingGraph struct {
	*memory.Graph
	flushes int
}

func (g *flushingGraph) Flush(context.Context) error {
	g.flushes++
	return nil
}

func quietMetrics(ctrl *gomock.Controller) *MockReporterMetrics {
	m := NewMockReporterMetrics(ctrl)
	m.EXPECT().ObserveFetch(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveSubmit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveHeight(gomock.Any()).AnyTimes()
	m.EXPECT().ObserveCheckpoint(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveRate(gomock.Any(), gomock.Any()).AnyTimes()
	return m
}

// blockLinks returns the inter-block edges as "from->to" block hashes.
func blockLinks(g *memory.Graph) []string {
	var out []string
	for _, e := range g.Edges(provenance.WasInformedBy) {
		from, fromBlock := e.From.Get(provenance.BlockHash)
		to, toBlock := e.To.Get(provenance.BlockHash)
		if fromBlock && toBlock {
			out = append(out, from+"->"+to)
		}
	}
	return out
}

func u64(v uint64) *uint64 { return &v }

// cancellingGraph calls cancel after the given number of sink calls and, like a database
// driver, refuses work on a done context.
type cancellingGraph struct {
	*memory.Graph
	cancel      context.CancelFunc
	cancelAfter int
	calls       int
}

func (g *cancellingGraph) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.calls++
	if g.calls == g.cancelAfter {
		g.cancel()
	}
	return nil
}

func (g *cancellingGraph) PutVertex(ctx context.Context, v provenance.Vertex) error {
	if err := g.step(ctx); err != nil {
		return err
	}
	return g.Graph.PutVertex(ctx, v)
}

func (g *cancellingGraph) PutEdge(ctx context.Context, e provenance.Edge) error {
	if err := g.step(ctx); err != nil {
		return err
	}
	return g.Graph.PutEdge(ctx, e)
}

// ctxCheckpoint refuses writes on a done context.
type ctxCheckpoint struct {
	memCheckpoint
}

func (c *ctxCheckpoint) Save(ctx context.Context, height uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.memCheckpoint.Save(ctx, height)
}
