package types

import "github.com/shopspring/decimal"

type OrderSide = string

var (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderType = string

var (
	TypeLimit  OrderType = "limit"
	TypeMarket OrderType = "market"
)

// OrderState follows the dashboard lifecycle: an order stays pending until it
// either fills or is cancelled; both of those states are terminal.
type OrderState = string

var (
	StatePending   OrderState = "pending"
	StateFilled    OrderState = "filled"
	StateCancelled OrderState = "cancelled"
)

type PositionKind = string

var (
	KindSpot   PositionKind = "spot"
	KindMargin PositionKind = "margin"
)

type PositionSide = string

var (
	PositionLong  PositionSide = "long"
	PositionShort PositionSide = "short"
)

// PriceMapping is the live symbol → price table owned by the price feed.
// Consumers always receive it by value (see Clone); absence of a key means
// "no known price", never zero.
type PriceMapping map[string]decimal.Decimal

func (m PriceMapping) Clone() PriceMapping {
	out := make(PriceMapping, len(m))
	for symbol, price := range m {
		out[symbol] = price
	}
	return out
}

func (m PriceMapping) Get(symbol string) (decimal.Decimal, bool) {
	price, found := m[symbol]
	return price, found
}
