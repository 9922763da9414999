package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Garage struct {
	ID          string  `db:"id" json:"id"`
	OwnerID     string  `db:"owner_id" json:"ownerID"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Size        string  `db:"size" json:"size"`
	Address     string  `db:"address" json:"address"`

	StartPrice decimal.Decimal `db:"start_price" json:"startPrice"`
	BidEndAt   time.Time       `db:"bid_end_at" json:"bidEndAt"`

	// Denormalized bid state, maintained by the bid worker. The bids table
	// stays the source of truth; these columns only feed cheap reads
	// (carousel, gRPC lookups).
	CurrentHighBid *decimal.Decimal `db:"current_high_bid" json:"currentHighBid"`
	BidCount       int              `db:"bid_count" json:"bidCount"`
	LastBidAt      *time.Time       `db:"last_bid_at" json:"lastBidAt"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// IsActive reports whether bidding is still open. There is no stored state
// transition; a garage ends the moment the wall clock passes its deadline.
func (g Garage) IsActive(now time.Time) bool {
	return g.BidEndAt.After(now)
}
