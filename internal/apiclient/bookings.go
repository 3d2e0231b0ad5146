package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flyawayhq/flyaway/internal/domain"
)

type CreateBookingRequest struct {
	UserID      int64              `json:"userId"`
	FlightID    int64              `json:"flightId"`
	Passengers  []domain.Passenger `json:"passengers"`
	TotalAmount float64            `json:"totalAmount"`
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListUserBookings returns the authenticated user's booking history.
func (c *Client) ListUserBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking deletes a booking. Any refund happens server-side; callers
// must re-fetch the wallet for the post-cancellation balance rather than
// trusting this response.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, nil)
}
