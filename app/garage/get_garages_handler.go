package garage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"parkex/bidding"
	"parkex/pkg/httperror"
)

type GetGaragesHandler struct {
	repository Repository
}

func NewGetGaragesHandler(repository Repository) *GetGaragesHandler {
	return &GetGaragesHandler{
		repository: repository,
	}
}

type GetGaragesRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Sort     string `query:"sort"`
}

// GarageListItem is one card in the listing grid.
type GarageListItem struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Address    string           `json:"address"`
	StartPrice decimal.Decimal  `json:"startPrice"`
	BidEndAt   time.Time        `json:"bidEndAt"`
	HighestBid *decimal.Decimal `json:"highestBid"`
	BidCount   int              `json:"bidCount"`
	IsActive   bool             `json:"isActive"`
}

type GetGaragesResponse struct {
	Garages      []GarageListItem `json:"garages"`
	Page         int              `json:"page"`
	PageSize     int              `json:"pageSize"`
	TotalGarages int              `json:"totalGarages"`
	TotalPages   int              `json:"totalPages"`
	WithBids     int              `json:"withBids"`
	WithoutBids  int              `json:"withoutBids"`
}

// Handle returns the active-listings grid. Each page is aggregated from the
// full bid history of the garages on it, then ordered by the requested sort
// mode; the repository already returns garages creation-descending so the
// "newest" mode is a no-op.
func (h GetGaragesHandler) Handle(ctx context.Context, req *GetGaragesRequest) (*GetGaragesResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 12
	}

	offset := (page - 1) * pageSize

	garages, err := h.repository.GetActiveGarages(ctx, pageSize, offset)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.index.failed",
			"Failed to retrieve listings",
			nil,
		)
	}

	total, err := h.repository.CountActiveGarages(ctx)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.index.count_failed",
			"Failed to count listings",
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
			"garage.index.bids_failed",
			"Failed to retrieve bids",
			nil,
		)
	}

	now := time.Now()
	views := bidding.SortViews(bidding.BuildViews(garages, bids), bidding.ParseSortMode(req.Sort))

	items := make([]GarageListItem, 0, len(views))
	withBids := 0
	for _, v := range views {
		if v.Summary.Count > 0 {
			withBids++
		}
		items = append(items, GarageListItem{
			ID:         v.Garage.ID,
			Title:      v.Garage.Title,
			Address:    v.Garage.Address,
			StartPrice: v.Garage.StartPrice,
			BidEndAt:   v.Garage.BidEndAt,
			HighestBid: v.Summary.HighestAmount,
			BidCount:   v.Summary.Count,
			IsActive:   v.IsActive(now),
		})
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &GetGaragesResponse{
		Garages:      items,
		Page:         page,
		PageSize:     pageSize,
		TotalGarages: total,
		TotalPages:   totalPages,
		WithBids:     withBids,
		WithoutBids:  len(items) - withBids,
	}, nil
}
