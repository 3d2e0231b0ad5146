package apiclient

import (
	"context"
	"net/http"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func (c *Client) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	var airplanes []domain.Airplane
	if err := c.do(ctx, http.MethodGet, "/airplanes", nil, nil, &airplanes); err != nil {
		return nil, err
	}
	return airplanes, nil
}

func (c *Client) CreateAirplane(ctx context.Context, airplane domain.Airplane) (*domain.Airplane, error) {
	var created domain.Airplane
	if err := c.do(ctx, http.MethodPost, "/airplanes", nil, airplane, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAirplane addresses the airplane by its registration number.
func (c *Client) UpdateAirplane(ctx context.Context, airplane domain.Airplane) (*domain.Airplane, error) {
	var updated domain.Airplane
	path := "/airplanes/number/" + airplane.Number
	if err := c.do(ctx, http.MethodPut, path, nil, airplane, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAirplane(ctx context.Context, number string) error {
	return c.do(ctx, http.MethodDelete, "/airplanes/number/"+number, nil, nil, nil)
}
