package models

import "github.com/shopspring/decimal"

// Candle is one OHLC bar from the historical market-data provider.
type Candle struct {
	Time  int64           `json:"time"` // bar open time, unix seconds
	Open  decimal.Decimal `json:"open"`
	High  decimal.Decimal `json:"high"`
	Low   decimal.Decimal `json:"low"`
	Close decimal.Decimal `json:"close"`
}
