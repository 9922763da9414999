package feedback

import (
	"context"

	"parkex/domain"
)

type Repository interface {
	Close() error
	CreateFeedback(ctx context.Context, userID *string, message string, rating *int, contact *string) (domain.Feedback, error)
}
