package garage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type fakeGarageRepository struct {
	garages  []domain.Garage
	bids     []domain.Bid
	profiles map[string]domain.Profile
	images   []domain.GarageImage
}

func (f *fakeGarageRepository) Close() error { return nil }

func (f *fakeGarageRepository) CreateGarage(ctx context.Context, req *CreateGarageRequest) (domain.Garage, error) {
	return domain.Garage{}, nil
}

func (f *fakeGarageRepository) GetActiveGarages(ctx context.Context, limit, offset int) ([]domain.Garage, error) {
	return f.garages, nil
}

func (f *fakeGarageRepository) CountActiveGarages(ctx context.Context) (int, error) {
	return len(f.garages), nil
}

func (f *fakeGarageRepository) GetGarage(ctx context.Context, id string) (domain.Garage, error) {
	for _, g := range f.garages {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Garage{}, sql.ErrNoRows
}

func (f *fakeGarageRepository) GetSellerGarages(ctx context.Context, ownerID string) ([]domain.Garage, error) {
	var out []domain.Garage
	for _, g := range f.garages {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGarageRepository) GetFeaturedGarages(ctx context.Context, limit int) ([]domain.Garage, error) {
	if limit > len(f.garages) {
		limit = len(f.garages)
	}
	return f.garages[:limit], nil
}

func (f *fakeGarageRepository) GetBidsForGarages(ctx context.Context, garageIDs []string) ([]domain.Bid, error) {
	ids := make(map[string]bool, len(garageIDs))
	for _, id := range garageIDs {
		ids[id] = true
	}
	var out []domain.Bid
	for _, b := range f.bids {
		if ids[b.GarageID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeGarageRepository) GetTopBid(ctx context.Context, garageID string) (*domain.Bid, error) {
	var top *domain.Bid
	for i, b := range f.bids {
		if b.GarageID != garageID {
			continue
		}
		if top == nil || b.Amount.GreaterThan(top.Amount) {
			top = &f.bids[i]
		}
	}
	return top, nil
}

func (f *fakeGarageRepository) CountBids(ctx context.Context, garageID string) (int, error) {
	count := 0
	for _, b := range f.bids {
		if b.GarageID == garageID {
			count++
		}
	}
	return count, nil
}

func (f *fakeGarageRepository) SaveImage(ctx context.Context, garageID string, imageURL string) (domain.GarageImage, error) {
	return domain.GarageImage{GarageID: garageID, ImageURL: imageURL}, nil
}

func (f *fakeGarageRepository) GetGarageImages(ctx context.Context, garageID string) ([]domain.GarageImage, error) {
	return f.images, nil
}

func (f *fakeGarageRepository) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return domain.Profile{}, sql.ErrNoRows
	}
	return p, nil
}

func activeGarage(id, ownerID string, startPrice int64, createdAgo time.Duration) domain.Garage {
	return domain.Garage{
		ID:         id,
		OwnerID:    ownerID,
		Title:      "Garage " + id,
		Address:    "Main St " + id,
		StartPrice: decimal.NewFromInt(startPrice),
		BidEndAt:   time.Now().Add(24 * time.Hour),
		CreatedAt:  time.Now().Add(-createdAgo),
	}
}

func garageBid(garageID, bidderID string, amount int64, at time.Time) domain.Bid {
	return domain.Bid{
		ID:        garageID + "-" + bidderID,
		GarageID:  garageID,
		BidderID:  bidderID,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: at,
	}
}

func TestGetGaragesDefaultSort(t *testing.T) {
	repo := &fakeGarageRepository{
		garages: []domain.Garage{
			activeGarage("g1", "seller-1", 100000, time.Hour),
			activeGarage("g2", "seller-1", 50000, 2*time.Hour),
		},
		bids: []domain.Bid{
			garageBid("g2", "buyer-1", 60000, time.Now().Add(-time.Minute)),
		},
	}

	handler := NewGetGaragesHandler(repo)

	res, err := handler.Handle(context.Background(), &GetGaragesRequest{})

	require.NoError(t, err)
	require.Len(t, res.Garages, 2)

	// Repository order is preserved for the default sort.
	assert.Equal(t, "g1", res.Garages[0].ID)
	assert.Equal(t, "g2", res.Garages[1].ID)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 12, res.PageSize)
	assert.Equal(t, 2, res.TotalGarages)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.WithBids)
	assert.Equal(t, 1, res.WithoutBids)

	assert.Nil(t, res.Garages[0].HighestBid)
	require.NotNil(t, res.Garages[1].HighestBid)
	assert.True(t, res.Garages[1].HighestBid.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 1, res.Garages[1].BidCount)
}

func TestGetGaragesBidsFirstSort(t *testing.T) {
	repo := &fakeGarageRepository{
		garages: []domain.Garage{
			activeGarage("g1", "seller-1", 900000, time.Hour),
			activeGarage("g2", "seller-1", 50000, 2*time.Hour),
		},
		bids: []domain.Bid{
			garageBid("g2", "buyer-1", 60000, time.Now().Add(-time.Minute)),
		},
	}

	handler := NewGetGaragesHandler(repo)

	res, err := handler.Handle(context.Background(), &GetGaragesRequest{Sort: "bids_first"})

	require.NoError(t, err)
	require.Len(t, res.Garages, 2)

	// The cheap garage with a bid outranks the expensive one without.
	assert.Equal(t, "g2", res.Garages[0].ID)
	assert.Equal(t, "g1", res.Garages[1].ID)
}

func TestGetGarageDetail(t *testing.T) {
	bidAt := time.Now().Add(-time.Minute)
	repo := &fakeGarageRepository{
		garages: []domain.Garage{
			activeGarage("g1", "seller-1", 100000, time.Hour),
		},
		bids: []domain.Bid{
			garageBid("g1", "buyer-1", 100001, bidAt),
		},
	}

	handler := NewGetGarageHandler(repo)

	res, err := handler.Handle(context.Background(), &GetGarageRequest{GarageID: "g1"})

	require.NoError(t, err)
	assert.Equal(t, "g1", res.Garage.ID)
	assert.True(t, res.IsActive)
	assert.Equal(t, 1, res.BidCount)

	require.NotNil(t, res.TopBid)
	assert.True(t, res.TopBid.Amount.Equal(decimal.NewFromInt(100001)))
	assert.Equal(t, "buyer-1", res.TopBid.BidderID)

	assert.True(t, res.MinimumNextBid.Equal(decimal.NewFromInt(100002)))
}

func TestGetGarageDetailNotFound(t *testing.T) {
	handler := NewGetGarageHandler(&fakeGarageRepository{})

	_, err := handler.Handle(context.Background(), &GetGarageRequest{GarageID: "missing"})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "garage.show.not_found", httpErr.Code)
}

func TestGetSellerGaragesRoleGate(t *testing.T) {
	tests := []struct {
		name     string
		profiles map[string]domain.Profile
		wantCode string
	}{
		{
			name:     "buyer is rejected",
			profiles: map[string]domain.Profile{"user-1": {ID: "user-1", Role: domain.RoleBuyer}},
			wantCode: "garage.seller_index.not_a_seller",
		},
		{
			name:     "no profile is rejected",
			profiles: map[string]domain.Profile{},
			wantCode: "garage.seller_index.not_a_seller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeGarageRepository{profiles: tt.profiles}
			handler := NewGetSellerGaragesHandler(repo)

			ctx := context.WithValue(context.Background(), "UserID", "user-1")
			_, err := handler.Handle(ctx, &GetSellerGaragesRequest{})

			var httpErr *httperror.Error
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, 403, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestGetSellerGaragesSplit(t *testing.T) {
	ended := activeGarage("g-ended", "seller-1", 40000, 48*time.Hour)
	ended.BidEndAt = time.Now().Add(-time.Hour)

	repo := &fakeGarageRepository{
		garages: []domain.Garage{
			activeGarage("g-open", "seller-1", 100000, time.Hour),
			ended,
		},
		bids: []domain.Bid{
			garageBid("g-ended", "buyer-9", 45000, time.Now().Add(-2*time.Hour)),
		},
		profiles: map[string]domain.Profile{
			"seller-1": {ID: "seller-1", Role: domain.RoleSeller},
		},
	}

	handler := NewGetSellerGaragesHandler(repo)

	ctx := context.WithValue(context.Background(), "UserID", "seller-1")
	res, err := handler.Handle(ctx, &GetSellerGaragesRequest{})

	require.NoError(t, err)
	require.Len(t, res.Active, 1)
	require.Len(t, res.Ended, 1)

	assert.Equal(t, "g-open", res.Active[0].ID)
	assert.Equal(t, "g-ended", res.Ended[0].ID)
	assert.Equal(t, "buyer-9", res.Ended[0].TopBidder)
	require.NotNil(t, res.Ended[0].HighestBid)
	assert.True(t, res.Ended[0].HighestBid.Equal(decimal.NewFromInt(45000)))
}
