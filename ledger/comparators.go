package ledger

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderKey orders entries inside a side tree. Price ranks first, created-at
// breaks ties (earlier order wins), the id keeps keys unique when both match.
type orderKey struct {
	Price     decimal.Decimal
	CreatedAt time.Time
	ID        uuid.UUID
}

func tieBreak(a, b *orderKey) int {
	if a.CreatedAt.Before(b.CreatedAt) {
		return -1
	}
	if a.CreatedAt.After(b.CreatedAt) {
		return 1
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// askComparator sorts asks ascending by price: best (lowest) ask first.
func askComparator(a, b interface{}) int {
	this := a.(*orderKey)
	that := b.(*orderKey)

	if result := this.Price.Cmp(that.Price); result != 0 {
		return result
	}
	return tieBreak(this, that)
}

// bidComparator sorts bids descending by price: best (highest) bid first.
func bidComparator(a, b interface{}) int {
	this := a.(*orderKey)
	that := b.(*orderKey)

	if result := that.Price.Cmp(this.Price); result != 0 {
		return result
	}
	return tieBreak(this, that)
}
