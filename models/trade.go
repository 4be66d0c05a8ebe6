package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an executed fill reported by the venue. Trades are append-only:
// once recorded they are never mutated or removed.
type Trade struct {
	ID        uuid.UUID       `json:"id"`
	MarketID  string          `json:"market_id"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Maker     string          `json:"maker"`
	Taker     string          `json:"taker"`
	CreatedAt time.Time       `json:"created_at"`
}

func (t Trade) ValidatePrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

func (t Trade) ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

func (t Trade) Total() decimal.Decimal {
	return t.Price.Mul(t.Amount)
}
