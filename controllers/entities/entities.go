package entities

import (
	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/risk"
)

// BookOrder is one row of the public depth view. Decimals are rendered as
// strings to keep exact values on the wire.
type BookOrder struct {
	ID        string `json:"id"`
	Price     string `json:"price"`
	Amount    string `json:"amount"`
	Total     string `json:"total"`
	Owner     string `json:"owner"`
	CreatedAt int64  `json:"created_at"`
}

type DepthEntity struct {
	MarketID string      `json:"market_id"`
	Bids     []BookOrder `json:"bids"`
	Asks     []BookOrder `json:"asks"`
	// Spread is omitted entirely when either side is empty.
	Spread *string `json:"spread,omitempty"`
}

func BookOrderFromModel(order models.Order) BookOrder {
	return BookOrder{
		ID:        order.ID.String(),
		Price:     order.Price.String(),
		Amount:    order.Amount.String(),
		Total:     order.Total.String(),
		Owner:     order.Owner,
		CreatedAt: order.CreatedAt.UnixMilli(),
	}
}

type MarketEntity struct {
	ID                    string `json:"id"`
	Symbol                string `json:"symbol"`
	BaseUnit              string `json:"base_unit"`
	QuoteUnit             string `json:"quote_unit"`
	PricePrecision        int32  `json:"price_precision"`
	AmountPrecision       int32  `json:"amount_precision"`
	MaxLeverage           int64  `json:"max_leverage"`
	MaintenanceMarginRate string `json:"maintenance_margin_rate"`
}

// PositionEntity enriches a provider position with its derived valuation.
// Valuation is null when no mark price is known for the asset.
type PositionEntity struct {
	models.Position
	Valuation *risk.Valuation `json:"valuation"`
}
