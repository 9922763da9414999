package profile

import (
	"context"
	"database/sql"
	"errors"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type GetProfileHandler struct {
	repository Repository
}

func NewGetProfileHandler(repository Repository) *GetProfileHandler {
	return &GetProfileHandler{
		repository: repository,
	}
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile domain.Profile `json:"profile"`
}

// Handle returns the caller's profile. A user who has authenticated but
// never saved a profile gets a skeleton with just their identity, so the
// profile form can prefill.
func (h GetProfileHandler) Handle(ctx context.Context, req *GetProfileRequest) (*GetProfileResponse, error) {
	userID := ctx.Value("UserID").(string)

	p, err := h.repository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			email, _ := ctx.Value("UserEmail").(string)
			return &GetProfileResponse{Profile: domain.Profile{ID: userID, Email: email}}, nil
		}

		return nil, httperror.InternalServerError(
			"profile.show.failed",
			"Failed to retrieve profile",
			nil,
		)
	}

	return &GetProfileResponse{Profile: p}, nil
}
