package profile

import (
	"context"

	"github.com/go-playground/validator/v10"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type UpdateProfileHandler struct {
	repository Repository
}

func NewUpdateProfileHandler(repository Repository) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		repository: repository,
	}
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      string  `json:"role" validate:"required,oneof=buyer seller"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type UpdateProfileResponse struct {
	Profile domain.Profile `json:"profile"`
}

func (h UpdateProfileHandler) Handle(ctx context.Context, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"profile.update.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"profile.update.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	userID := ctx.Value("UserID").(string)
	email, _ := ctx.Value("UserEmail").(string)

	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, httperror.BadRequest(
			"profile.update.invalid_role",
			"Role must be buyer or seller",
			nil,
		)
	}

	p, err := h.repository.UpsertProfile(ctx, domain.Profile{
		ID:        userID,
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return nil, httperror.InternalServerError(
			"profile.update.failed",
			"An error occurred while saving the profile",
			nil,
		)
	}

	return &UpdateProfileResponse{Profile: p}, nil
}
