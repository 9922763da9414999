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

type GetGarageHandler struct {
	repository Repository
}

func NewGetGarageHandler(repository Repository) *GetGarageHandler {
	return &GetGarageHandler{
		repository: repository,
	}
}

type GetGarageRequest struct {
	GarageID string `params:"id"`
}

type TopBid struct {
	Amount    decimal.Decimal `json:"amount"`
	BidderID  string          `json:"bidderID"`
	CreatedAt time.Time       `json:"createdAt"`
}

type GetGarageResponse struct {
	Garage         domain.Garage        `json:"garage"`
	Images         []domain.GarageImage `json:"images"`
	TopBid         *TopBid              `json:"topBid"`
	BidCount       int                  `json:"bidCount"`
	MinimumNextBid decimal.Decimal      `json:"minimumNextBid"`
	IsActive       bool                 `json:"isActive"`
}

func (h GetGarageHandler) Handle(ctx context.Context, req *GetGarageRequest) (*GetGarageResponse, error) {
	g, err := h.repository.GetGarage(ctx, req.GarageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NotFound(
				"garage.show.not_found",
				"Listing not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"garage.show.failed",
			"Failed to retrieve listing",
			nil,
		)
	}

	top, err := h.repository.GetTopBid(ctx, g.ID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.show.top_bid_failed",
			"Failed to retrieve top bid",
			nil,
		)
	}

	count, err := h.repository.CountBids(ctx, g.ID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.show.bid_count_failed",
			"Failed to count bids",
			nil,
		)
	}

	images, err := h.repository.GetGarageImages(ctx, g.ID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.show.images_failed",
			"Failed to retrieve images",
			nil,
		)
	}

	res := &GetGarageResponse{
		Garage:   g,
		Images:   images,
		BidCount: count,
		IsActive: g.IsActive(time.Now()),
	}

	var highest *decimal.Decimal
	if top != nil {
		highest = &top.Amount
		res.TopBid = &TopBid{
			Amount:    top.Amount,
			BidderID:  top.BidderID,
			CreatedAt: top.CreatedAt,
		}
	}
	res.MinimumNextBid = bidding.MinimumNextBid(g.StartPrice, highest)

	return res, nil
}
