package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// Order is a single order intent owned by the session ledger. Total is
// derived and must always equal Price × Amount exactly; the ledger recomputes
// it, callers never set it.
type Order struct {
	ID        uuid.UUID         `json:"id"`
	MarketID  string            `json:"market_id"`
	Side      types.OrderSide   `json:"side"`
	OrdType   types.OrderType   `json:"ord_type"`
	Price     decimal.Decimal   `json:"price"`
	Amount    decimal.Decimal   `json:"amount"`
	Total     decimal.Decimal   `json:"total"`
	State     types.OrderState  `json:"state"`
	Owner     string            `json:"owner"`
	CreatedAt time.Time         `json:"created_at"`
}

func (o *Order) IsPending() bool {
	return o.State == types.StatePending
}

// Terminal reports whether the order left the pending state. Terminal orders
// are immutable.
func (o *Order) Terminal() bool {
	return o.State == types.StateFilled || o.State == types.StateCancelled
}

func (o *Order) ComputeTotal() decimal.Decimal {
	return o.Price.Mul(o.Amount)
}

func (o *Order) ValidateSide(side types.OrderSide) bool {
	return side == types.SideBuy || side == types.SideSell
}

func (o *Order) ValidatePrice(price decimal.Decimal) bool {
	if o.OrdType == types.TypeMarket {
		return true // priced from the feed at submission time
	}
	return !price.IsNegative()
}

func (o *Order) ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}
