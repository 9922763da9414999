package bid

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkex/bidding"
	"parkex/domain"
	"parkex/pkg/events"
	"parkex/pkg/httperror"
)

type fakeBidRepository struct {
	placeBid func(ctx context.Context, garageID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error)
}

func (f *fakeBidRepository) Close() error { return nil }

func (f *fakeBidRepository) PlaceBid(ctx context.Context, garageID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
	return f.placeBid(ctx, garageID, bidderID, amount, now)
}

func (f *fakeBidRepository) GetBidsByGarage(ctx context.Context, garageID string, limit, offset int) ([]domain.Bid, error) {
	return nil, nil
}

func (f *fakeBidRepository) CountBids(ctx context.Context, garageID string) (int, error) {
	return 0, nil
}

func (f *fakeBidRepository) GetBidsByBidder(ctx context.Context, bidderID string) ([]domain.Bid, error) {
	return nil, nil
}

func (f *fakeBidRepository) GetBidsForGarages(ctx context.Context, garageIDs []string) ([]domain.Bid, error) {
	return nil, nil
}

func (f *fakeBidRepository) GetGaragesByIDs(ctx context.Context, ids []string) ([]domain.Garage, error) {
	return nil, nil
}

type fakePublisher struct {
	published []*events.Event
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) Publish(ctx context.Context, exchange string, event *events.Event, headers events.Headers) error {
	f.published = append(f.published, event)
	return nil
}

type recordingRecorder struct {
	requests []string
	bids     []string
}

func (r *recordingRecorder) IncRequest(route string, status int) { r.requests = append(r.requests, route) }
func (r *recordingRecorder) IncBid(outcome string)               { r.bids = append(r.bids, outcome) }

func bidderContext(userID string) context.Context {
	return context.WithValue(context.Background(), "UserID", userID)
}

const garageID = "7b8a2f90-1f55-4f4b-9a2e-6f2d6a3c1e01"

func TestPlaceBidAccepted(t *testing.T) {
	accepted := domain.Bid{
		ID:        "bid-1",
		GarageID:  garageID,
		BidderID:  "buyer-1",
		Amount:    decimal.NewFromInt(100001),
		CreatedAt: time.Now(),
	}

	repo := &fakeBidRepository{
		placeBid: func(ctx context.Context, gID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
			assert.Equal(t, garageID, gID)
			assert.Equal(t, "buyer-1", bidderID)
			return accepted, bidding.Decision{Outcome: bidding.OutcomeAccepted, MinimumRequired: decimal.NewFromInt(100001)}, nil
		},
	}
	publisher := &fakePublisher{}
	recorder := &recordingRecorder{}

	handler := NewPlaceBidHandler(repo, publisher, recorder)

	res, err := handler.Handle(bidderContext("buyer-1"), &PlaceBidRequest{
		GarageID: garageID,
		Amount:   decimal.NewFromInt(100001),
	})

	require.NoError(t, err)
	assert.Equal(t, accepted, res.Bid)
	assert.Equal(t, []string{string(bidding.OutcomeAccepted)}, recorder.bids)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.BidPlacedEvent, publisher.published[0].Event)
}

func TestPlaceBidRejections(t *testing.T) {
	tests := []struct {
		name     string
		decision bidding.Decision
		wantCode string
	}{
		{
			name:     "too low",
			decision: bidding.Decision{Outcome: bidding.OutcomeTooLow, MinimumRequired: decimal.NewFromInt(100002)},
			wantCode: "bid.place.too_low",
		},
		{
			name:     "self bid",
			decision: bidding.Decision{Outcome: bidding.OutcomeSelfBid},
			wantCode: "bid.place.self_bid",
		},
		{
			name:     "closed",
			decision: bidding.Decision{Outcome: bidding.OutcomeClosed},
			wantCode: "bid.place.closed",
		},
		{
			name:     "invalid amount",
			decision: bidding.Decision{Outcome: bidding.OutcomeInvalidAmount},
			wantCode: "bid.place.invalid_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBidRepository{
				placeBid: func(ctx context.Context, gID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
					return domain.Bid{}, tt.decision, nil
				},
			}
			publisher := &fakePublisher{}
			recorder := &recordingRecorder{}

			handler := NewPlaceBidHandler(repo, publisher, recorder)

			_, err := handler.Handle(bidderContext("buyer-1"), &PlaceBidRequest{
				GarageID: garageID,
				Amount:   decimal.NewFromInt(50),
			})

			require.Error(t, err)

			var httpErr *httperror.Error
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)

			assert.Empty(t, publisher.published, "rejected bids must not publish events")
			assert.Equal(t, []string{string(tt.decision.Outcome)}, recorder.bids)
		})
	}
}

func TestPlaceBidTooLowIncludesMinimum(t *testing.T) {
	repo := &fakeBidRepository{
		placeBid: func(ctx context.Context, gID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
			return domain.Bid{}, bidding.Decision{
				Outcome:         bidding.OutcomeTooLow,
				MinimumRequired: decimal.NewFromInt(100002),
			}, nil
		},
	}

	handler := NewPlaceBidHandler(repo, &fakePublisher{}, &recordingRecorder{})

	_, err := handler.Handle(bidderContext("buyer-1"), &PlaceBidRequest{
		GarageID: garageID,
		Amount:   decimal.NewFromInt(100001),
	})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Contains(t, httpErr.Message, "100002")
}

func TestPlaceBidGarageNotFound(t *testing.T) {
	repo := &fakeBidRepository{
		placeBid: func(ctx context.Context, gID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
			return domain.Bid{}, bidding.Decision{}, sql.ErrNoRows
		},
	}

	handler := NewPlaceBidHandler(repo, &fakePublisher{}, &recordingRecorder{})

	_, err := handler.Handle(bidderContext("buyer-1"), &PlaceBidRequest{
		GarageID: garageID,
		Amount:   decimal.NewFromInt(100001),
	})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "bid.place.garage_not_found", httpErr.Code)
}

func TestPlaceBidValidation(t *testing.T) {
	handler := NewPlaceBidHandler(&fakeBidRepository{}, &fakePublisher{}, &recordingRecorder{})

	tests := []struct {
		name string
		req  PlaceBidRequest
	}{
		{
			name: "missing garage id",
			req:  PlaceBidRequest{Amount: decimal.NewFromInt(100001)},
		},
		{
			name: "garage id not a uuid",
			req:  PlaceBidRequest{GarageID: "not-a-uuid", Amount: decimal.NewFromInt(100001)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(bidderContext("buyer-1"), &tt.req)

			var httpErr *httperror.Error
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, "bid.place.validation_failed", httpErr.Code)
		})
	}
}
