package garage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"parkex/bidding"
	"parkex/domain"
	"parkex/pkg/httperror"
)

// GetSellerGaragesHandler is the seller dashboard: the caller's own
// listings, split into running and ended auctions, each with its top bid
// and bidder so the seller can follow up with the winner.
type GetSellerGaragesHandler struct {
	repository Repository
}

func NewGetSellerGaragesHandler(repository Repository) *GetSellerGaragesHandler {
	return &GetSellerGaragesHandler{
		repository: repository,
	}
}

type GetSellerGaragesRequest struct{}

type SellerGarage struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Address    string           `json:"address"`
	StartPrice decimal.Decimal  `json:"startPrice"`
	BidEndAt   time.Time        `json:"bidEndAt"`
	HighestBid *decimal.Decimal `json:"highestBid"`
	TopBidder  string           `json:"topBidder,omitempty"`
	BidCount   int              `json:"bidCount"`
	LastBidAt  *time.Time       `json:"lastBidAt"`
}

type GetSellerGaragesResponse struct {
	Active []SellerGarage `json:"active"`
	Ended  []SellerGarage `json:"ended"`
}

func (h GetSellerGaragesHandler) Handle(ctx context.Context, req *GetSellerGaragesRequest) (*GetSellerGaragesResponse, error) {
	userID := ctx.Value("UserID").(string)

	profile, err := h.repository.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, httperror.InternalServerError(
			"garage.seller_index.profile_lookup_failed",
			"Failed to look up profile",
			nil,
		)
	}
	if profile.Role != domain.RoleSeller {
		return nil, httperror.Forbidden(
			"garage.seller_index.not_a_seller",
			"Only sellers can view this page",
			nil,
		)
	}

	garages, err := h.repository.GetSellerGarages(ctx, userID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.seller_index.failed",
			"Failed to retrieve listings",
			nil,
		)
	}

	garageIDs := make([]string, 0, len(garages))
	for _, g := range garages {
		garageIDs = append(garageIDs, g.ID)
	}

	bids, err := h.repository.GetBidsForGarages(ctx, garageIDs)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.seller_index.bids_failed",
			"Failed to retrieve bids",
			nil,
		)
	}

	views := bidding.BuildViews(garages, bids)
	active, ended := bidding.SplitActiveEnded(views, time.Now())

	return &GetSellerGaragesResponse{
		Active: toSellerGarages(active),
		Ended:  toSellerGarages(ended),
	}, nil
}

func toSellerGarages(views []bidding.GarageView) []SellerGarage {
	out := make([]SellerGarage, 0, len(views))
	for _, v := range views {
		out = append(out, SellerGarage{
			ID:         v.Garage.ID,
			Title:      v.Garage.Title,
			Address:    v.Garage.Address,
			StartPrice: v.Garage.StartPrice,
			BidEndAt:   v.Garage.BidEndAt,
			HighestBid: v.Summary.HighestAmount,
			TopBidder:  v.Summary.HighestBidderID,
			BidCount:   v.Summary.Count,
			LastBidAt:  v.Summary.LastBidAt,
		})
	}
	return out
}
