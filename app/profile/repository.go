package profile

import (
	"context"

	"parkex/domain"
)

type Repository interface {
	Close() error
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
}
