package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func (c *Client) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	if err := c.do(ctx, http.MethodGet, "/flights", nil, nil, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	var flight domain.Flight
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/flights/%d", id), nil, nil, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// SearchFlights filters server-side by route and date. Zero/empty parameters
// are omitted, matching the contract's optional query fields.
func (c *Client) SearchFlights(ctx context.Context, sourceID, destinationID int64, date string) ([]domain.Flight, error) {
	query := url.Values{}
	if sourceID > 0 {
		query.Set("sourceId", strconv.FormatInt(sourceID, 10))
	}
	if destinationID > 0 {
		query.Set("destinationId", strconv.FormatInt(destinationID, 10))
	}
	if date != "" {
		query.Set("date", date)
	}

	var flights []domain.Flight
	if err := c.do(ctx, http.MethodGet, "/flights/search", query, nil, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) CreateFlight(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	var created domain.Flight
	if err := c.do(ctx, http.MethodPost, "/flights", nil, flight, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFlight resubmits a full replacement; the client never patches fields.
func (c *Client) UpdateFlight(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	var updated domain.Flight
	path := fmt.Sprintf("/flights/%d", flight.FlightID)
	if err := c.do(ctx, http.MethodPut, path, nil, flight, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFlight(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/flights/%d", id), nil, nil, nil)
}
