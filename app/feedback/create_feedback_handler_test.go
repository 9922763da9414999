package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkex/domain"
	"parkex/pkg/httperror"
)

type fakeFeedbackRepository struct {
	lastUserID *string
	lastRating *int
}

func (f *fakeFeedbackRepository) Close() error { return nil }

func (f *fakeFeedbackRepository) CreateFeedback(ctx context.Context, userID *string, message string, rating *int, contact *string) (domain.Feedback, error) {
	f.lastUserID = userID
	f.lastRating = rating
	return domain.Feedback{
		ID:        "fb-1",
		UserID:    userID,
		Message:   message,
		Rating:    rating,
		Contact:   contact,
		CreatedAt: time.Now(),
	}, nil
}

func intPtr(n int) *int { return &n }

func TestCreateFeedbackAnonymous(t *testing.T) {
	repo := &fakeFeedbackRepository{}
	handler := NewCreateFeedbackHandler(repo)

	res, err := handler.Handle(context.Background(), &CreateFeedbackRequest{
		Message: "Great marketplace",
	})

	require.NoError(t, err)
	assert.Equal(t, "Great marketplace", res.Feedback.Message)
	assert.Nil(t, repo.lastUserID, "anonymous feedback must not carry a user id")
}

func TestCreateFeedbackWithIdentityAndRating(t *testing.T) {
	repo := &fakeFeedbackRepository{}
	handler := NewCreateFeedbackHandler(repo)

	ctx := context.WithValue(context.Background(), "UserID", "user-1")
	res, err := handler.Handle(ctx, &CreateFeedbackRequest{
		Message: "Found a spot in a day",
		Rating:  intPtr(5),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastUserID)
	assert.Equal(t, "user-1", *repo.lastUserID)
	require.NotNil(t, res.Feedback.Rating)
	assert.Equal(t, 5, *res.Feedback.Rating)
}

func TestCreateFeedbackValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateFeedbackRequest
	}{
		{
			name: "message required",
			req:  CreateFeedbackRequest{Rating: intPtr(4)},
		},
		{
			name: "rating below range",
			req:  CreateFeedbackRequest{Message: "hi", Rating: intPtr(0)},
		},
		{
			name: "rating above range",
			req:  CreateFeedbackRequest{Message: "hi", Rating: intPtr(6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateFeedbackHandler(&fakeFeedbackRepository{})

			_, err := handler.Handle(context.Background(), &tt.req)

			var httpErr *httperror.Error
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, "feedback.create.validation_failed", httpErr.Code)
		})
	}
}
