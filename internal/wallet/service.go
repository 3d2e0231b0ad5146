package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flyawayhq/flyaway/internal/apiclient"
	"github.com/flyawayhq/flyaway/internal/domain"
)

type WalletUseCase interface {
	Ensure(ctx context.Context, userID int64) (*domain.Wallet, error)
	TopUp(ctx context.Context, userID int64, amount float64) (*domain.Wallet, error)
}

// API is the slice of the client the wallet workflow needs.
type API interface {
	WalletFor(ctx context.Context, userID int64) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	TopUpWallet(ctx context.Context, userID int64, amount float64) error
}

type Service struct {
	api API
	log *logrus.Logger
}

type ServiceOption func(*Service)

func WithLogger(log *logrus.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

func NewService(api API, opts ...ServiceOption) *Service {
	s := &Service{api: api, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure fetches the user's wallet. When the wallet does not exist yet, it
// issues one create call and one re-fetch; never a loop.
func (s *Service) Ensure(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.api.WalletFor(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apiclient.ErrNotFound) {
		return nil, err
	}

	s.log.WithField("userId", userID).Info("wallet absent, creating")
	if _, err := s.api.CreateWallet(ctx, userID); err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}
	return s.api.WalletFor(ctx, userID)
}

// TopUp submits one additive-balance request and re-fetches the wallet; the
// fetched balance is the only source of truth for display. On failure the
// caller's displayed balance stays as it was.
func (s *Service) TopUp(ctx context.Context, userID int64, amount float64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, errors.New("top-up amount must be positive")
	}
	if err := s.api.TopUpWallet(ctx, userID, amount); err != nil {
		return nil, err
	}
	return s.api.WalletFor(ctx, userID)
}

var _ WalletUseCase = (*Service)(nil)
