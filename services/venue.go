// Package services declares the external collaborators the engine talks to.
// Both run off-engine: the engine never performs execution or position
// custody itself.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// OrderSubmitter delivers an order intent to the execution venue. It returns
// an opaque confirmation handle (e.g. a transaction hash). The engine does
// not retry on the caller's behalf and makes no exactly-once promise.
type OrderSubmitter interface {
	Submit(ctx context.Context, side types.OrderSide, amount, price decimal.Decimal, asset string) (string, error)
}

// PositionProvider returns the open spot/margin positions for an account.
// The result is authoritative input to the risk calculator.
type PositionProvider interface {
	Positions(ctx context.Context, account string) ([]models.Position, error)
}
