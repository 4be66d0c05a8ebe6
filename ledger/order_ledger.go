package ledger

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// OrderLedger owns every order of the active session for one market and
// derives the sorted bid/ask views. It performs no matching: fills are
// reported by the venue and applied through Fill.
type OrderLedger struct {
	ledgerMutex sync.RWMutex

	MarketID string

	orders map[uuid.UUID]*models.Order
	bids   *redblacktree.Tree
	asks   *redblacktree.Tree

	marketPrice decimal.Decimal
	priceKnown  bool
}

// Submission is the caller-supplied part of an order; the ledger assigns id,
// timestamp, state and total.
type Submission struct {
	Side    types.OrderSide
	OrdType types.OrderType
	Price   decimal.Decimal
	Amount  decimal.Decimal
	Owner   string
}

func NewOrderLedger(marketID string) *OrderLedger {
	return &OrderLedger{
		MarketID: marketID,
		orders:   make(map[uuid.UUID]*models.Order),
		bids:     redblacktree.NewWith(bidComparator),
		asks:     redblacktree.NewWith(askComparator),
	}
}

// SetMarketPrice records the latest mark price, used to price market
// submissions. Invoked from the price feed subscription.
func (l *OrderLedger) SetMarketPrice(price decimal.Decimal) {
	l.ledgerMutex.Lock()
	defer l.ledgerMutex.Unlock()

	l.marketPrice = price
	l.priceKnown = true
}

func (l *OrderLedger) MarketPrice() (decimal.Decimal, bool) {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	return l.marketPrice, l.priceKnown
}

// Submit validates the submission, computes the total and appends a pending
// order. The returned order is a copy; the ledger keeps ownership.
func (l *OrderLedger) Submit(submission Submission) (models.Order, error) {
	ordType := submission.OrdType
	if ordType == "" {
		ordType = types.TypeLimit
	}

	order := &models.Order{
		MarketID: l.MarketID,
		Side:     submission.Side,
		OrdType:  ordType,
		Amount:   submission.Amount,
		Owner:    submission.Owner,
	}

	if !order.ValidateSide(order.Side) {
		return models.Order{}, ErrInvalidSide
	}
	if !order.ValidateAmount(order.Amount) {
		return models.Order{}, ErrInvalidAmount
	}
	if !order.ValidatePrice(submission.Price) {
		return models.Order{}, ErrInvalidPrice
	}

	l.ledgerMutex.Lock()
	defer l.ledgerMutex.Unlock()

	price := submission.Price
	if ordType == types.TypeMarket {
		if !l.priceKnown {
			return models.Order{}, ErrPriceUnavailable
		}
		price = l.marketPrice
	}

	order.ID = uuid.New()
	order.Price = price
	order.State = types.StatePending
	order.CreatedAt = time.Now()
	order.Total = order.ComputeTotal()

	l.orders[order.ID] = order
	l.sideTree(order.Side).Put(keyOf(order), order)

	return *order, nil
}

// Cancel transitions a pending order to cancelled and removes it from the
// book views in the same mutation. Terminal orders are rejected, not
// silently ignored.
func (l *OrderLedger) Cancel(id uuid.UUID) (models.Order, error) {
	return l.finalize(id, types.StateCancelled)
}

// Fill marks a pending order as filled when the venue reports execution.
func (l *OrderLedger) Fill(id uuid.UUID) (models.Order, error) {
	return l.finalize(id, types.StateFilled)
}

func (l *OrderLedger) finalize(id uuid.UUID, state types.OrderState) (models.Order, error) {
	l.ledgerMutex.Lock()
	defer l.ledgerMutex.Unlock()

	order, found := l.orders[id]
	if !found {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Terminal() {
		return models.Order{}, ErrOrderNotPending
	}

	order.State = state
	l.sideTree(order.Side).Remove(keyOf(order))

	return *order, nil
}

func (l *OrderLedger) Get(id uuid.UUID) (models.Order, bool) {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	order, found := l.orders[id]
	if !found {
		return models.Order{}, false
	}
	return *order, true
}

// View returns the pending orders of both sides: bids descending by price,
// asks ascending, ties broken by ascending creation time. Both slices are
// copies and safe to hold across later mutations.
func (l *OrderLedger) View() (bids []models.Order, asks []models.Order) {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	bids = make([]models.Order, 0, l.bids.Size())
	it := l.bids.Iterator()
	for it.Next() {
		bids = append(bids, *it.Value().(*models.Order))
	}

	asks = make([]models.Order, 0, l.asks.Size())
	it = l.asks.Iterator()
	for it.Next() {
		asks = append(asks, *it.Value().(*models.Order))
	}

	return bids, asks
}

// Spread is best ask minus best bid. Reported absent when either side is
// empty; may be negative, the session book is allowed to cross.
func (l *OrderLedger) Spread() (decimal.Decimal, bool) {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	if l.bids.Empty() || l.asks.Empty() {
		return decimal.Zero, false
	}

	bestBid := l.bids.Left().Value.(*models.Order).Price
	bestAsk := l.asks.Left().Value.(*models.Order).Price

	return bestAsk.Sub(bestBid), true
}

// Pending returns the number of orders currently visible in the book.
func (l *OrderLedger) Pending() int {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	return l.bids.Size() + l.asks.Size()
}

func (l *OrderLedger) sideTree(side types.OrderSide) *redblacktree.Tree {
	if side == types.SideSell {
		return l.asks
	}
	return l.bids
}

func keyOf(order *models.Order) *orderKey {
	return &orderKey{
		Price:     order.Price,
		CreatedAt: order.CreatedAt,
		ID:        order.ID,
	}
}
