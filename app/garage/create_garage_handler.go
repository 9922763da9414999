package garage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"parkex/domain"
	"parkex/pkg/events"
	"parkex/pkg/httperror"
)

type CreateGarageHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateGarageRequest struct {
	OwnerID     string          `json:"ownerID,omitempty" db:"owner_id"`
	Title       string          `json:"title" validate:"required" db:"title"`
	Description *string         `json:"description" db:"description"`
	Size        string          `json:"size" validate:"required" db:"size"`
	Address     string          `json:"address" validate:"required" db:"address"`
	StartPrice  decimal.Decimal `json:"startPrice" validate:"required" db:"start_price"`
	BidEndAt    time.Time       `json:"bidEndAt" validate:"required" db:"bid_end_at"`
}

type CreateGarageResponse struct {
	Garage domain.Garage `json:"garage"`
}

func NewCreateGarageHandler(repository Repository, eventPublisher events.Publisher) *CreateGarageHandler {
	return &CreateGarageHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateGarageHandler) Handle(ctx context.Context, req *CreateGarageRequest) (*CreateGarageResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"garage.create.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"garage.create.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	if !req.StartPrice.IsPositive() {
		return nil, httperror.BadRequest(
			"garage.create.invalid_start_price",
			"Start price must be positive",
			nil,
		)
	}

	if !req.BidEndAt.After(time.Now()) {
		return nil, httperror.BadRequest(
			"garage.create.deadline_in_past",
			"Bid deadline must be in the future",
			nil,
		)
	}

	userID := ctx.Value("UserID").(string)

	profile, err := h.repository.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, httperror.InternalServerError(
			"garage.create.profile_lookup_failed",
			"Failed to look up profile",
			nil,
		)
	}
	if profile.Role != domain.RoleSeller {
		return nil, httperror.Forbidden(
			"garage.create.not_a_seller",
			"Only sellers can create listings",
			nil,
		)
	}

	req.OwnerID = userID

	g, err := h.repository.CreateGarage(ctx, req)
	if err != nil {
		return nil, httperror.InternalServerError(
			"garage.create.create_failed",
			"An error occurred while creating the listing",
			nil,
		)
	}

	if h.eventPublisher != nil {
		headers := events.Headers{
			TraceID:       events.GenerateTraceID(),
			CorrelationID: events.GenerateCorrelationID(),
			Service:       "parkex",
		}

		event := events.NewEvent(events.GarageCreatedEvent, events.EventVersionV1, events.GarageCreatedPayload{
			ID:         g.ID,
			OwnerID:    g.OwnerID,
			Title:      g.Title,
			Size:       g.Size,
			Address:    g.Address,
			StartPrice: g.StartPrice,
			BidEndAt:   g.BidEndAt,
			CreatedAt:  g.CreatedAt,
		}, headers)

		if err := h.eventPublisher.Publish(ctx, events.GarageExchange, event, headers); err != nil {
			zap.L().Error("Failed to publish garage.created event",
				zap.String("garageID", g.ID),
				zap.Error(err),
			)
		}
	}

	return &CreateGarageResponse{
		Garage: g,
	}, nil
}
