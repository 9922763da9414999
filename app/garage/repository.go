package garage

import (
	"context"

	"parkex/domain"
)

type Repository interface {
	Close() error
	CreateGarage(ctx context.Context, req *CreateGarageRequest) (domain.Garage, error)
	GetActiveGarages(ctx context.Context, limit, offset int) ([]domain.Garage, error)
	CountActiveGarages(ctx context.Context) (int, error)
	GetGarage(ctx context.Context, id string) (domain.Garage, error)
	GetSellerGarages(ctx context.Context, ownerID string) ([]domain.Garage, error)
	GetFeaturedGarages(ctx context.Context, limit int) ([]domain.Garage, error)
	GetBidsForGarages(ctx context.Context, garageIDs []string) ([]domain.Bid, error)
	GetTopBid(ctx context.Context, garageID string) (*domain.Bid, error)
	CountBids(ctx context.Context, garageID string) (int, error)
	SaveImage(ctx context.Context, garageID string, imageURL string) (domain.GarageImage, error)
	GetGarageImages(ctx context.Context, garageID string) ([]domain.GarageImage, error)
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
}
