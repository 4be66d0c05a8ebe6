// Package risk derives unrealized PnL and liquidation prices from a position
// and the live price mapping. Every function is pure and re-evaluated per
// call; nothing here caches a price.
package risk

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

var (
	// ErrPriceUnavailable means the mapping has no price for the position's
	// asset. Callers decide how to present it; the engine never substitutes
	// zero.
	ErrPriceUnavailable = errors.New("risk: no mark price for asset")

	ErrNotMargin                = errors.New("risk: liquidation price requires a margin position")
	ErrInvalidLeverage          = errors.New("risk: leverage must be >= 1")
	ErrInvalidMaintenanceMargin = errors.New("risk: maintenance margin rate must be in [0, 1)")
)

var one = decimal.NewFromInt(1)

// UnrealizedPnL values the position at the current mark price.
//
// Sign convention: Size is unsigned and direction is explicit in
// Position.Side. Longs (and every spot position) earn size × (mark − entry);
// shorts earn size × (entry − mark).
func UnrealizedPnL(position *models.Position, prices types.PriceMapping) (decimal.Decimal, error) {
	markPrice, found := prices.Get(position.Asset)
	if !found {
		return decimal.Zero, ErrPriceUnavailable
	}

	if position.IsShort() {
		return position.Size.Mul(position.EntryPrice.Sub(markPrice)), nil
	}
	return position.Size.Mul(markPrice.Sub(position.EntryPrice)), nil
}

// LiquidationPrice is the mark price at which the position's equity erodes to
// the maintenance margin threshold:
//
//	long:  entry × (1 − (1 − mmr)/leverage)
//	short: entry × (1 + (1 − mmr)/leverage)
//
// Invalid parameters are rejected before computation, never clamped.
func LiquidationPrice(position *models.Position) (decimal.Decimal, error) {
	if !position.IsMargin() {
		return decimal.Zero, ErrNotMargin
	}
	if position.Leverage < 1 {
		return decimal.Zero, ErrInvalidLeverage
	}
	mmr := position.MaintenanceMarginRate
	if mmr.IsNegative() || mmr.GreaterThanOrEqual(one) {
		return decimal.Zero, ErrInvalidMaintenanceMargin
	}

	leverage := decimal.NewFromInt(position.Leverage)
	erosion := one.Sub(mmr).Div(leverage)

	if position.IsShort() {
		return position.EntryPrice.Mul(one.Add(erosion)), nil
	}
	return position.EntryPrice.Mul(one.Sub(erosion)), nil
}

// Valuation bundles the derived numbers the portfolio view displays.
type Valuation struct {
	MarkPrice        decimal.Decimal  `json:"mark_price"`
	PnL              decimal.Decimal  `json:"pnl"`
	LiquidationPrice *decimal.Decimal `json:"liquidation_price,omitempty"`
}

// Evaluate computes the full valuation for one position. Spot positions carry
// no liquidation price.
func Evaluate(position *models.Position, prices types.PriceMapping) (Valuation, error) {
	pnl, err := UnrealizedPnL(position, prices)
	if err != nil {
		return Valuation{}, err
	}

	markPrice, _ := prices.Get(position.Asset)
	valuation := Valuation{
		MarkPrice: markPrice,
		PnL:       pnl,
	}

	if position.IsMargin() {
		liquidation, err := LiquidationPrice(position)
		if err != nil {
			return Valuation{}, err
		}
		valuation.LiquidationPrice = &liquidation
	}

	return valuation, nil
}
