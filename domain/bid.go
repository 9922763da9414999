package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is append-only: rows are inserted once and never updated or deleted.
type Bid struct {
	ID        string          `db:"id" json:"id"`
	GarageID  string          `db:"garage_id" json:"garageID"`
	BidderID  string          `db:"bidder_id" json:"bidderID"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
