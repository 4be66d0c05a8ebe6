// Package engine wires the price feed into the per-market ledgers. The feed,
// ledgers and snapshot store are explicit constructor arguments so tests can
// run several isolated engines side by side.
package engine

import (
	"context"
	"errors"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/ledger"
	"github.com/enterprise220/RWA-Trade-Hub/pricefeed"
	"github.com/enterprise220/RWA-Trade-Hub/snapshot"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

var ErrMarketNotFound = errors.New("engine: market not found")

// MarketLedgers groups the two ledgers of one market.
type MarketLedgers struct {
	Market config.Market
	Orders *ledger.OrderLedger
	Trades *ledger.TradeLedger
}

type Engine struct {
	Feed      *pricefeed.Feed
	Snapshots *snapshot.Store

	markets  map[string]*MarketLedgers // market id → ledgers
	bySymbol map[string]*MarketLedgers // url-safe symbol → ledgers
	byStream map[string]*MarketLedgers // stream symbol → ledgers

	feedSubID int
}

// New builds an engine for the configured markets. The trade sink may be nil.
func New(feed *pricefeed.Feed, snapshots *snapshot.Store, sink ledger.TradeSink) *Engine {
	e := &Engine{
		Feed:      feed,
		Snapshots: snapshots,
		markets:   make(map[string]*MarketLedgers),
		bySymbol:  make(map[string]*MarketLedgers),
		byStream:  make(map[string]*MarketLedgers),
	}

	for _, market := range config.Markets {
		ledgers := &MarketLedgers{
			Market: market,
			Orders: ledger.NewOrderLedger(market.ID),
			Trades: ledger.NewTradeLedger(market.ID, sink),
		}
		e.markets[market.ID] = ledgers
		e.bySymbol[market.Symbol] = ledgers
		e.byStream[market.StreamSymbol] = ledgers
	}

	return e
}

// Start subscribes the ledgers to the feed and connects the stream.
func (e *Engine) Start(ctx context.Context) error {
	e.feedSubID = e.Feed.Subscribe(e.applyPrices)

	if err := e.Feed.Connect(ctx); err != nil {
		return err
	}

	config.Logger.Infof("engine: started with %d markets", len(e.markets))
	return nil
}

// Stop detaches the ledgers from the feed. The feed itself winds down with
// its context.
func (e *Engine) Stop() {
	e.Feed.Unsubscribe(e.feedSubID)
}

// applyPrices pushes the latest mark prices into every market ledger. It runs
// synchronously on the feed goroutine for each published mapping.
func (e *Engine) applyPrices(prices types.PriceMapping) {
	for symbol, price := range prices {
		if ledgers, found := e.byStream[symbol]; found {
			ledgers.Orders.SetMarketPrice(price)
		}
	}
}

// Market resolves by market id ("BTC/USD") or url-safe symbol ("btcusd").
func (e *Engine) Market(id string) (*MarketLedgers, error) {
	if ledgers, found := e.markets[id]; found {
		return ledgers, nil
	}
	if ledgers, found := e.bySymbol[id]; found {
		return ledgers, nil
	}
	return nil, ErrMarketNotFound
}

func (e *Engine) Markets() []*MarketLedgers {
	out := make([]*MarketLedgers, 0, len(e.markets))
	for _, market := range config.Markets {
		out = append(out, e.markets[market.ID])
	}
	return out
}

// Prices returns the current mapping by value.
func (e *Engine) Prices() types.PriceMapping {
	return e.Feed.Snapshot()
}

// SaveSession persists the whitelisted session state (best-effort).
func (e *Engine) SaveSession(name, selectedMarket string) {
	e.Snapshots.Save(name, snapshot.Document{
		snapshot.KeySelectedMarket: selectedMarket,
		snapshot.KeyFeedConnected:  e.Feed.Connected(),
	})
}

func (e *Engine) LoadSession(name string) snapshot.Document {
	return e.Snapshots.Load(name)
}
