package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exchanges
const (
	BidExchange    = "parkex.bid"
	GarageExchange = "parkex.garage"
)

// Event names
const (
	BidPlacedEvent           = "bid.placed"
	GarageCreatedEvent       = "garage.created"
	GarageImageUploadedEvent = "garage.image.uploaded"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

// BidPlacedPayload is emitted after an admitted bid commits. Consumers
// refresh the garage's denormalized bid columns from it.
type BidPlacedPayload struct {
	BidID     string          `json:"bidId"`
	GarageID  string          `json:"garageId"`
	BidderID  string          `json:"bidderId"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type GarageCreatedPayload struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"ownerId"`
	Title      string          `json:"title"`
	Size       string          `json:"size"`
	Address    string          `json:"address"`
	StartPrice decimal.Decimal `json:"startPrice"`
	BidEndAt   time.Time       `json:"bidEndAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type GarageImageUploadedPayload struct {
	ID        string    `json:"id"`
	GarageID  string    `json:"garageId"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
