package apiclient

import (
	"context"
	"net/http"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
