package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// PaperVenue is an in-process venue used when no real execution backend is
// configured. It accepts every order and serves positions seeded at startup.
type PaperVenue struct {
	positionsMutex sync.RWMutex
	positions      map[string][]models.Position
}

func NewPaperVenue() *PaperVenue {
	return &PaperVenue{
		positions: make(map[string][]models.Position),
	}
}

func (v *PaperVenue) Submit(ctx context.Context, side types.OrderSide, amount, price decimal.Decimal, asset string) (string, error) {
	id := uuid.New().String()

	config.Logger.Infof("paper venue: accepted %s %s %s @ %s (%s)", side, amount.String(), asset, price.String(), id)
	return id, nil
}

func (v *PaperVenue) Positions(ctx context.Context, account string) ([]models.Position, error) {
	v.positionsMutex.RLock()
	defer v.positionsMutex.RUnlock()

	held := v.positions[account]
	out := make([]models.Position, len(held))
	copy(out, held)

	return out, nil
}

// Seed registers positions for an account, replacing any previous set.
func (v *PaperVenue) Seed(account string, positions []models.Position) {
	v.positionsMutex.Lock()
	defer v.positionsMutex.Unlock()

	held := make([]models.Position, len(positions))
	copy(held, positions)
	v.positions[account] = held
}
