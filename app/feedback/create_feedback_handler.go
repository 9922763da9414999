package feedback

import (
	"context"

	"github.com/go-playground/validator/v10"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type CreateFeedbackHandler struct {
	repository Repository
}

func NewCreateFeedbackHandler(repository Repository) *CreateFeedbackHandler {
	return &CreateFeedbackHandler{
		repository: repository,
	}
}

type CreateFeedbackRequest struct {
	Message string  `json:"message" validate:"required"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Contact *string `json:"contact,omitempty"`
}

type CreateFeedbackResponse struct {
	Feedback domain.Feedback `json:"feedback"`
}

// Handle accepts feedback from logged-in and anonymous visitors alike; the
// identity is attached when present.
func (h CreateFeedbackHandler) Handle(ctx context.Context, req *CreateFeedbackRequest) (*CreateFeedbackResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"feedback.create.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"feedback.create.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	var userID *string
	if id, ok := ctx.Value("UserID").(string); ok && id != "" {
		userID = &id
	}

	f, err := h.repository.CreateFeedback(ctx, userID, req.Message, req.Rating, req.Contact)
	if err != nil {
		return nil, httperror.InternalServerError(
			"feedback.create.failed",
			"An error occurred while saving feedback",
			nil,
		)
	}

	return &CreateFeedbackResponse{Feedback: f}, nil
}
