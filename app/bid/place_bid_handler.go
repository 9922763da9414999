package bid

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"parkex/bidding"
	"parkex/domain"
	"parkex/pkg/events"
	"parkex/pkg/httperror"
	"parkex/pkg/metrics"
)

type PlaceBidHandler struct {
	repository     Repository
	eventPublisher events.Publisher
	recorder       metrics.Recorder
}

type PlaceBidRequest struct {
	GarageID string          `json:"garageId" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
}

type PlaceBidResponse struct {
	Bid domain.Bid `json:"bid"`
}

func NewPlaceBidHandler(repository Repository, eventPublisher events.Publisher, recorder metrics.Recorder) *PlaceBidHandler {
	return &PlaceBidHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
		recorder:       recorder,
	}
}

// Handle admits and persists one bid. The admission decision itself is made
// by the repository inside the insert transaction; this handler only maps
// outcomes to HTTP errors and fans out the bid.placed event on success.
func (h PlaceBidHandler) Handle(ctx context.Context, req *PlaceBidRequest) (*PlaceBidResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"bid.place.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"bid.place.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	bidderID := ctx.Value("UserID").(string)

	placed, decision, err := h.repository.PlaceBid(ctx, req.GarageID, bidderID, req.Amount, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NotFound(
				"bid.place.garage_not_found",
				"Listing not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"bid.place.failed",
			"An error occurred while placing the bid",
			nil,
		)
	}

	h.recorder.IncBid(string(decision.Outcome))

	if !decision.Accepted() {
		return nil, rejectionError(decision)
	}

	if h.eventPublisher != nil {
		headers := events.Headers{
			TraceID:       events.GenerateTraceID(),
			CorrelationID: events.GenerateCorrelationID(),
			Service:       "parkex",
		}

		event := events.NewEvent(events.BidPlacedEvent, events.EventVersionV1, events.BidPlacedPayload{
			BidID:     placed.ID,
			GarageID:  placed.GarageID,
			BidderID:  placed.BidderID,
			Amount:    placed.Amount,
			CreatedAt: placed.CreatedAt,
		}, headers)

		if err := h.eventPublisher.Publish(ctx, events.BidExchange, event, headers); err != nil {
			zap.L().Error("Failed to publish bid.placed event",
				zap.String("bidID", placed.ID),
				zap.Error(err),
			)
		}
	}

	return &PlaceBidResponse{Bid: placed}, nil
}

func rejectionError(decision bidding.Decision) *httperror.Error {
	switch decision.Outcome {
	case bidding.OutcomeInvalidAmount:
		return httperror.BadRequest(
			"bid.place.invalid_amount",
			"Bid amount must be a positive number",
			nil,
		)
	case bidding.OutcomeSelfBid:
		return httperror.BadRequest(
			"bid.place.self_bid",
			"Cannot bid on own listing",
			nil,
		)
	case bidding.OutcomeClosed:
		return httperror.BadRequest(
			"bid.place.closed",
			"Bidding closed",
			nil,
		)
	case bidding.OutcomeTooLow:
		return httperror.BadRequest(
			"bid.place.too_low",
			"Bid too low. Minimum required: "+decision.MinimumRequired.String(),
			fiber.Map{"minimumRequired": decision.MinimumRequired},
		)
	default:
		return httperror.InternalServerError(
			"bid.place.unknown_outcome",
			"Unknown admission outcome",
			nil,
		)
	}
}
