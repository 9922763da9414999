package garage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"parkex/bidding"
	"parkex/pkg/httperror"
)

// GetFeaturedGaragesHandler backs the homepage carousel: active listings
// with the most recent bid activity first.
type GetFeaturedGaragesHandler struct {
	repository Repository
}

func NewGetFeaturedGaragesHandler(repository Repository) *GetFeaturedGaragesHandler {
	return &GetFeaturedGaragesHandler{
		repository: repository,
	}
}

type GetFeaturedGaragesRequest struct {
	Limit int `query:"limit"`
}

type FeaturedGarage struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Address    string           `json:"address"`
	StartPrice decimal.Decimal  `json:"startPrice"`
	BidEndAt   time.Time        `json:"bidEndAt"`
	HighestBid *decimal.Decimal `json:"highestBid"`
	LastBidAt  *time.Time       `json:"lastBidAt"`
}

type GetFeaturedGaragesResponse struct {
	Garages []FeaturedGarage `json:"garages"`
}

func (h GetFeaturedGaragesHandler) Handle(ctx context.Context, req *GetFeaturedGaragesRequest) (*GetFeaturedGaragesResponse, error) {
	limit := req.Limit
	if limit < 1 || limit > 20 {
		limit = 6
	}

	garages, err := h.repository.GetFeaturedGarages(ctx, limit)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.featured.failed",
			"Failed to retrieve featured listings",
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
			"garage.featured.bids_failed",
			"Failed to retrieve bids",
			nil,
		)
	}

	views := bidding.BuildViews(garages, bids)

	items := make([]FeaturedGarage, 0, len(views))
	for _, v := range views {
		items = append(items, FeaturedGarage{
			ID:         v.Garage.ID,
			Title:      v.Garage.Title,
			Address:    v.Garage.Address,
			StartPrice: v.Garage.StartPrice,
			BidEndAt:   v.Garage.BidEndAt,
			HighestBid: v.Summary.HighestAmount,
			LastBidAt:  v.Summary.LastBidAt,
		})
	}

	return &GetFeaturedGaragesResponse{Garages: items}, nil
}
