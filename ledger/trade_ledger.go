package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/enterprise220/RWA-Trade-Hub/models"
)

// TradeSink receives every recorded trade for out-of-band persistence.
// Implementations must be best-effort: a failing sink never affects the
// ledger.
type TradeSink interface {
	Write(trade models.Trade)
}

// TradeLedger is the append-only record of executed trades for one market.
// There is no mutation or deletion API.
type TradeLedger struct {
	tradeMutex sync.RWMutex

	MarketID string

	trades []models.Trade // insertion order
	sink   TradeSink
}

func NewTradeLedger(marketID string, sink TradeSink) *TradeLedger {
	return &TradeLedger{
		MarketID: marketID,
		trades:   make([]models.Trade, 0),
		sink:     sink,
	}
}

// Record appends an immutable trade. The ledger assigns the id and defaults
// the timestamp when the caller left them empty.
func (t *TradeLedger) Record(trade models.Trade) (models.Trade, error) {
	if !trade.ValidatePrice(trade.Price) {
		return models.Trade{}, ErrInvalidPrice
	}
	if !trade.ValidateAmount(trade.Amount) {
		return models.Trade{}, ErrInvalidAmount
	}

	if trade.ID == uuid.Nil {
		trade.ID = uuid.New()
	}
	if trade.CreatedAt.IsZero() {
		trade.CreatedAt = time.Now()
	}
	trade.MarketID = t.MarketID

	t.tradeMutex.Lock()
	t.trades = append(t.trades, trade)
	t.tradeMutex.Unlock()

	if t.sink != nil {
		t.sink.Write(trade)
	}

	return trade, nil
}

// All returns every trade sorted descending by timestamp, most recent first.
// Equal timestamps rank the most recently appended trade first.
func (t *TradeLedger) All() []models.Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	// Reverse insertion order first so that the stable sort keeps later
	// appends ahead of earlier ones on timestamp ties.
	out := make([]models.Trade, len(t.trades))
	for i, trade := range t.trades {
		out[len(t.trades)-1-i] = trade
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// Recent returns at most n trades, most recent first.
func (t *TradeLedger) Recent(n int) []models.Trade {
	all := t.All()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func (t *TradeLedger) Size() int {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	return len(t.trades)
}
