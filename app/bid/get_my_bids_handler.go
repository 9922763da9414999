package bid

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"parkex/bidding"
	"parkex/pkg/httperror"
)

// GetMyBidsHandler is the bidder dashboard: every listing the caller has
// bid on, labeled winning/outbid while the auction runs and won/lost once
// it ends.
type GetMyBidsHandler struct {
	repository Repository
}

func NewGetMyBidsHandler(repository Repository) *GetMyBidsHandler {
	return &GetMyBidsHandler{
		repository: repository,
	}
}

type GetMyBidsRequest struct{}

type MyBid struct {
	GarageID  string               `json:"garageID"`
	Title     string               `json:"title"`
	Address   string               `json:"address"`
	BidEndAt  time.Time            `json:"bidEndAt"`
	OwnAmount decimal.Decimal      `json:"ownAmount"`
	LastBidAt time.Time            `json:"lastBidAt"`
	Status    bidding.BidderStatus `json:"status"`
}

type GetMyBidsResponse struct {
	Bids []MyBid `json:"bids"`
}

func (h GetMyBidsHandler) Handle(ctx context.Context, req *GetMyBidsRequest) (*GetMyBidsResponse, error) {
	bidderID := ctx.Value("UserID").(string)

	ownBids, err := h.repository.GetBidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"bid.mine.failed",
			"Failed to retrieve bids",
			nil,
		)
	}

	garageIDs := make([]string, 0, len(ownBids))
	seen := make(map[string]bool, len(ownBids))
	for _, b := range ownBids {
		if !seen[b.GarageID] {
			seen[b.GarageID] = true
			garageIDs = append(garageIDs, b.GarageID)
		}
	}

	// Winning is judged against everyone's bids, not just the caller's.
	allBids, err := h.repository.GetBidsForGarages(ctx, garageIDs)
	if err != nil {
		return nil, httperror.InternalServerError(
			"bid.mine.history_failed",
			"Failed to retrieve bid history",
			nil,
		)
	}

	garages, err := h.repository.GetGaragesByIDs(ctx, garageIDs)
	if err != nil {
		return nil, httperror.InternalServerError(
			"bid.mine.garages_failed",
			"Failed to retrieve listings",
			nil,
		)
	}

	entries := bidding.PerBidderView(allBids, garages, bidderID, time.Now())

	out := make([]MyBid, 0, len(entries))
	for _, e := range entries {
		out = append(out, MyBid{
			GarageID:  e.Garage.ID,
			Title:     e.Garage.Title,
			Address:   e.Garage.Address,
			BidEndAt:  e.Garage.BidEndAt,
			OwnAmount: e.OwnAmount,
			LastBidAt: e.LastBidAt,
			Status:    e.Status,
		})
	}

	return &GetMyBidsResponse{Bids: out}, nil
}
