package consumers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parkex/pkg/events"
)

type fakeUpdater struct {
	calls []updateCall
	err   error
}

type updateCall struct {
	garageID string
	amount   decimal.Decimal
	bidTime  time.Time
}

func (f *fakeUpdater) UpdateGarageBidState(ctx context.Context, garageID string, amount decimal.Decimal, bidTime time.Time) error {
	f.calls = append(f.calls, updateCall{garageID: garageID, amount: amount, bidTime: bidTime})
	return f.err
}

func bidPlacedEvent(payload events.BidPlacedPayload) *events.Event {
	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
	}
	return events.NewEvent(events.BidPlacedEvent, events.EventVersionV1, payload, headers)
}

func TestHandleBidPlacedUpdatesGarage(t *testing.T) {
	updater := &fakeUpdater{}
	handler := NewBidEventHandler(updater, zap.NewNop())

	placedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := bidPlacedEvent(events.BidPlacedPayload{
		BidID:     "bid-1",
		GarageID:  "g1",
		BidderID:  "buyer-1",
		Amount:    decimal.NewFromInt(100001),
		CreatedAt: placedAt,
	})

	err := handler.HandleEvent(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, updater.calls, 1)
	assert.Equal(t, "g1", updater.calls[0].garageID)
	assert.True(t, updater.calls[0].amount.Equal(decimal.NewFromInt(100001)))
	assert.Equal(t, placedAt, updater.calls[0].bidTime)
}

func TestHandleBidPlacedRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload events.BidPlacedPayload
	}{
		{
			name:    "missing garage id",
			payload: events.BidPlacedPayload{BidID: "bid-1", Amount: decimal.NewFromInt(1)},
		},
		{
			name:    "non-positive amount",
			payload: events.BidPlacedPayload{BidID: "bid-1", GarageID: "g1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updater := &fakeUpdater{}
			handler := NewBidEventHandler(updater, zap.NewNop())

			err := handler.HandleEvent(context.Background(), bidPlacedEvent(tt.payload))

			require.Error(t, err)
			assert.Empty(t, updater.calls)
		})
	}
}

func TestHandleBidPlacedSkipsMissingGarage(t *testing.T) {
	updater := &fakeUpdater{err: sql.ErrNoRows}
	handler := NewBidEventHandler(updater, zap.NewNop())

	event := bidPlacedEvent(events.BidPlacedPayload{
		BidID:    "bid-1",
		GarageID: "g-deleted",
		Amount:   decimal.NewFromInt(100001),
	})

	err := handler.HandleEvent(context.Background(), event)

	assert.NoError(t, err, "a bid for a deleted garage is dropped, not dead-lettered")
}

func TestHandleEventIgnoresUnknownType(t *testing.T) {
	updater := &fakeUpdater{}
	handler := NewBidEventHandler(updater, zap.NewNop())

	event := events.NewEvent("bid.cancelled", events.EventVersionV1, nil, events.Headers{})

	err := handler.HandleEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Empty(t, updater.calls)
}
