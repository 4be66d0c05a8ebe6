package models

import (
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// Position is an open spot or margin position reported by the position
// provider. PnL and liquidation price are always derived from the current
// price mapping, never stored here.
type Position struct {
	ID         string              `json:"id"`
	Kind       types.PositionKind  `json:"kind"`
	Side       types.PositionSide  `json:"side"` // spot positions are always long
	Asset      string              `json:"asset"`
	Size       decimal.Decimal     `json:"size"` // unsigned; direction comes from Side
	EntryPrice decimal.Decimal     `json:"entry_price"`

	// Margin-only fields, zero for spot.
	Leverage              int64           `json:"leverage,omitempty"`
	MaintenanceMarginRate decimal.Decimal `json:"maintenance_margin_rate,omitempty"`
}

func (p *Position) IsMargin() bool {
	return p.Kind == types.KindMargin
}

func (p *Position) IsShort() bool {
	return p.Side == types.PositionShort
}
