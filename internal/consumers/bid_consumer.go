package consumers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"parkex/pkg/events"
)

// GarageStateUpdater is the slice of the storage layer the projector needs.
type GarageStateUpdater interface {
	UpdateGarageBidState(ctx context.Context, garageID string, amount decimal.Decimal, bidTime time.Time) error
}

// BidEventHandler projects bid.placed events onto the denormalized bid
// columns of the garages table so list pages never join against bids.
type BidEventHandler struct {
	repository GarageStateUpdater
	logger     *zap.Logger
}

func NewBidEventHandler(repository GarageStateUpdater, logger *zap.Logger) *BidEventHandler {
	return &BidEventHandler{
		repository: repository,
		logger:     logger,
	}
}

func (h *BidEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	zap.L().Info("Bid event received",
		zap.String("event", event.Event),
		zap.String("version", event.Version),
		zap.String("traceId", event.TraceID),
	)

	switch event.Event {
	case events.BidPlacedEvent:
		return h.handleBidPlaced(ctx, event)
	default:
		zap.L().Warn("Unknown bid event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *BidEventHandler) handleBidPlaced(ctx context.Context, event *events.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("malformed payload - marshal failed: %w", err)
	}

	var payload events.BidPlacedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return fmt.Errorf("malformed payload - unmarshal failed: %w", err)
	}

	if payload.GarageID == "" {
		return fmt.Errorf("malformed payload - garageId missing")
	}
	if !payload.Amount.IsPositive() {
		return fmt.Errorf("malformed payload - amount missing or not positive")
	}

	bidTime := payload.CreatedAt
	if bidTime.IsZero() {
		bidTime = event.Timestamp
	}

	zap.L().Info("Processing bid.placed event",
		zap.String("garageId", payload.GarageID),
		zap.String("amount", payload.Amount.String()),
		zap.Time("bidTime", bidTime),
		zap.String("traceId", event.TraceID),
	)

	if err := h.repository.UpdateGarageBidState(ctx, payload.GarageID, payload.Amount, bidTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The garage row is gone. Retrying cannot succeed, so the
			// message is treated as handled rather than dead-lettered.
			zap.L().Warn("Garage not found for bid event, skipping",
				zap.String("garageId", payload.GarageID),
				zap.String("traceId", event.TraceID),
			)
			return nil
		}
		return fmt.Errorf("failed to update garage bid state: %w", err)
	}

	return nil
}
