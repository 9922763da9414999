package profile

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type fakeProfileRepository struct {
	profiles map[string]domain.Profile
}

func (f *fakeProfileRepository) Close() error { return nil }

func (f *fakeProfileRepository) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return domain.Profile{}, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeProfileRepository) UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if f.profiles == nil {
		f.profiles = make(map[string]domain.Profile)
	}
	f.profiles[p.ID] = p
	return p, nil
}

func identityContext(userID, email string) context.Context {
	ctx := context.WithValue(context.Background(), "UserID", userID)
	return context.WithValue(ctx, "UserEmail", email)
}

func TestUpdateProfileRoles(t *testing.T) {
	for _, role := range []string{"buyer", "seller"} {
		t.Run(role, func(t *testing.T) {
			repo := &fakeProfileRepository{}
			handler := NewUpdateProfileHandler(repo)

			res, err := handler.Handle(identityContext("user-1", "u1@example.com"), &UpdateProfileRequest{
				Role: role,
			})

			require.NoError(t, err)
			assert.Equal(t, domain.UserRole(role), res.Profile.Role)
			assert.Equal(t, "u1@example.com", res.Profile.Email)
			assert.Equal(t, domain.UserRole(role), repo.profiles["user-1"].Role)
		})
	}
}

func TestUpdateProfileRejectsUnknownRole(t *testing.T) {
	handler := NewUpdateProfileHandler(&fakeProfileRepository{})

	_, err := handler.Handle(identityContext("user-1", "u1@example.com"), &UpdateProfileRequest{
		Role: "admin",
	})

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Status)
}

func TestGetProfileFallsBackToIdentity(t *testing.T) {
	handler := NewGetProfileHandler(&fakeProfileRepository{})

	res, err := handler.Handle(identityContext("user-1", "u1@example.com"), &GetProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, "user-1", res.Profile.ID)
	assert.Equal(t, "u1@example.com", res.Profile.Email)
	assert.Empty(t, res.Profile.Role)
}

func TestGetProfileReturnsStored(t *testing.T) {
	repo := &fakeProfileRepository{
		profiles: map[string]domain.Profile{
			"user-1": {ID: "user-1", Email: "u1@example.com", Role: domain.RoleSeller},
		},
	}
	handler := NewGetProfileHandler(repo)

	res, err := handler.Handle(identityContext("user-1", "u1@example.com"), &GetProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, res.Profile.Role)
}
