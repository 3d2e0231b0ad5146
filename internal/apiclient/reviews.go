package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	var created domain.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
