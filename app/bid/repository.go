package bid

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"parkex/bidding"
	"parkex/domain"
)

type Repository interface {
	Close() error
	// PlaceBid runs the admission check and the insert inside one
	// transaction against the authoritative top bid. A rejected decision is
	// returned with a zero Bid and a nil error.
	PlaceBid(ctx context.Context, garageID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error)
	GetBidsByGarage(ctx context.Context, garageID string, limit, offset int) ([]domain.Bid, error)
	CountBids(ctx context.Context, garageID string) (int, error)
	GetBidsByBidder(ctx context.Context, bidderID string) ([]domain.Bid, error)
	GetBidsForGarages(ctx context.Context, garageIDs []string) ([]domain.Bid, error)
	GetGaragesByIDs(ctx context.Context, ids []string) ([]domain.Garage, error)
}
