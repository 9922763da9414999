package grpc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"parkex/domain"
	listingv1 "parkex/proto/gen"
)

// ListingReader is the slice of the storage layer the listing service needs.
type ListingReader interface {
	GetGarage(ctx context.Context, id string) (domain.Garage, error)
	GetTopBid(ctx context.Context, garageID string) (*domain.Bid, error)
	CountBids(ctx context.Context, garageID string) (int, error)
}

type ListingServiceServer struct {
	listingv1.UnimplementedListingServiceServer
	repository ListingReader
}

func NewListingServiceServer(repository ListingReader) *ListingServiceServer {
	return &ListingServiceServer{
		repository: repository,
	}
}

// GetListingForBid returns an authoritative snapshot of a garage listing,
// reading the top bid from the bids table rather than the denormalized
// columns so callers see the latest state.
func (s *ListingServiceServer) GetListingForBid(ctx context.Context, req *listingv1.GetListingForBidRequest) (*listingv1.GetListingForBidResponse, error) {
	if req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	garage, err := s.repository.GetGarage(ctx, req.ListingId)
	if err != nil {
		return nil, s.mapError(err)
	}

	topBid, err := s.repository.GetTopBid(ctx, garage.ID)
	if err != nil {
		return nil, s.mapError(err)
	}

	bidCount, err := s.repository.CountBids(ctx, garage.ID)
	if err != nil {
		return nil, s.mapError(err)
	}

	currentHighBid := ""
	if topBid != nil {
		currentHighBid = topBid.Amount.String()
	}

	return &listingv1.GetListingForBidResponse{
		Id:             garage.ID,
		OwnerId:        garage.OwnerID,
		Title:          garage.Title,
		StartPrice:     garage.StartPrice.String(),
		BidEndAt:       timestamppb.New(garage.BidEndAt),
		CurrentHighBid: currentHighBid,
		BidCount:       int32(bidCount),
		Active:         garage.IsActive(time.Now()),
		CreatedAt:      timestamppb.New(garage.CreatedAt),
	}, nil
}

func (s *ListingServiceServer) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return status.Error(codes.NotFound, "listing not found")
	}
	return status.Error(codes.Internal, "internal error")
}
