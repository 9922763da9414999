package bid

import (
	"context"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type GetGarageBidsHandler struct {
	repository Repository
}

func NewGetGarageBidsHandler(repository Repository) *GetGarageBidsHandler {
	return &GetGarageBidsHandler{
		repository: repository,
	}
}

type GetGarageBidsRequest struct {
	GarageID string `params:"id"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}

type GetGarageBidsResponse struct {
	Bids      []domain.Bid `json:"bids"`
	Page      int          `json:"page"`
	PageSize  int          `json:"pageSize"`
	TotalBids int          `json:"totalBids"`
}

// Handle returns a listing's bid history, highest first (equal amounts
// oldest first, matching the admission tie-break).
func (h GetGarageBidsHandler) Handle(ctx context.Context, req *GetGarageBidsRequest) (*GetGarageBidsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	bids, err := h.repository.GetBidsByGarage(ctx, req.GarageID, pageSize, offset)
	if err != nil {
		return nil, httperror.InternalServerError(
			"bid.index.failed",
			"Failed to retrieve bids",
			nil,
		)
	}

	total, err := h.repository.CountBids(ctx, req.GarageID)
	if err != nil {
		return nil, httperror.InternalServerError(
			"bid.index.count_failed",
			"Failed to count bids",
			nil,
		)
	}

	return &GetGarageBidsResponse{
		Bids:      bids,
		Page:      page,
		PageSize:  pageSize,
		TotalBids: total,
	}, nil
}
