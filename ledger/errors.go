package ledger

import "errors"

var (
	ErrOrderNotFound   = errors.New("ledger: order not found")
	ErrOrderNotPending = errors.New("ledger: order is not pending")

	ErrInvalidSide   = errors.New("ledger: invalid order side")
	ErrInvalidPrice  = errors.New("ledger: price must not be negative")
	ErrInvalidAmount = errors.New("ledger: amount must be positive")

	// ErrPriceUnavailable is returned when a market submission arrives before
	// the feed has published a price for the market.
	ErrPriceUnavailable = errors.New("ledger: no market price available")
)
