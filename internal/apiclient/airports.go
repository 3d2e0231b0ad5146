package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func (c *Client) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	if err := c.do(ctx, http.MethodGet, "/airports", nil, nil, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *Client) SearchAirports(ctx context.Context, q string) ([]domain.Airport, error) {
	query := url.Values{"query": []string{q}}
	var airports []domain.Airport
	if err := c.do(ctx, http.MethodGet, "/airports/search", query, nil, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *Client) CreateAirport(ctx context.Context, airport domain.Airport) (*domain.Airport, error) {
	var created domain.Airport
	if err := c.do(ctx, http.MethodPost, "/airports", nil, airport, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAirport addresses the airport by its code, e.g. LAX.
func (c *Client) UpdateAirport(ctx context.Context, airport domain.Airport) (*domain.Airport, error) {
	var updated domain.Airport
	if err := c.do(ctx, http.MethodPut, "/airports/"+airport.Code, nil, airport, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAirport(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/airports/"+code, nil, nil, nil)
}
