package httperror

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad_request", BadRequest("c", "m", nil), fiber.StatusBadRequest},
		{"unauthorized", Unauthorized("c", "m", nil), fiber.StatusUnauthorized},
		{"forbidden", Forbidden("c", "m", nil), fiber.StatusForbidden},
		{"not_found", NotFound("c", "m", nil), fiber.StatusNotFound},
		{"conflict", Conflict("c", "m", nil), fiber.StatusConflict},
		{"internal", InternalServerError("c", "m", nil), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status)
		})
	}
}

func TestErrorIsUnwrappable(t *testing.T) {
	var target *Error
	err := error(BadRequest("bid.place.too_low", "Bid too low", fiber.Map{"minimumRequired": "100001"}))
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "bid.place.too_low", target.Code)
	assert.Equal(t, "bid.place.too_low: Bid too low", err.Error())
}
