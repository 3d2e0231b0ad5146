package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flyawayhq/flyaway/internal/domain"
)

// Wallet fetches the authenticated user's own wallet.
func (c *Client) Wallet(ctx context.Context) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// WalletFor fetches a wallet by owner. Returns ErrNotFound when the wallet
// has not been created yet.
func (c *Client) WalletFor(ctx context.Context, userID int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/wallets/%d", userID), nil, nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

type addMoneyRequest struct {
	Balance float64 `json:"balance"`
}

// AddMoney credits the authenticated user's own wallet.
func (c *Client) AddMoney(ctx context.Context, amount float64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	var wallet domain.Wallet
	if err := c.do(ctx, http.MethodPost, "/wallet/add", nil, addMoneyRequest{Balance: amount}, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

type topUpRequest struct {
	UserID int64   `json:"userId"`
	Amount float64 `json:"amount"`
}

func (c *Client) TopUpWallet(ctx context.Context, userID int64, amount float64) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	return c.do(ctx, http.MethodPost, "/wallets/topup", nil, topUpRequest{UserID: userID, Amount: amount}, nil)
}

func (c *Client) CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	query := url.Values{"userId": []string{strconv.FormatInt(userID, 10)}}
	var wallet domain.Wallet
	if err := c.do(ctx, http.MethodPost, "/wallets/create", query, nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}
