package backend

import (
	"context"
	"net/http"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

func (c *Client) CreateBooking(ctx context.Context, token string, booking domain.ResolvedBooking) (*domain.BookingConfirmation, error) {
	var confirmation domain.BookingConfirmation
	if err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", token, booking, &confirmation); err != nil {
		return nil, err
	}

	if err := validate.Struct(&confirmation); err != nil {
		return nil, &SchemaError{Resource: "booking", Err: err}
	}

	return &confirmation, nil
}
