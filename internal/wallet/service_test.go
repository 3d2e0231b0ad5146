package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flyawayhq/flyaway/internal/apiclient"
	"github.com/flyawayhq/flyaway/internal/domain"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) WalletFor(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) TopUpWallet(ctx context.Context, userID int64, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func TestEnsure_ExistingWallet(t *testing.T) {
	api := new(MockAPI)
	api.On("WalletFor", mock.Anything, int64(7)).
		Return(&domain.Wallet{WalletID: 1, UserID: 7, Balance: 500}, nil)

	svc := NewService(api)
	w, err := svc.Ensure(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, float64(500), w.Balance)
	api.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything)
}

func TestEnsure_CreatesMissingWalletOnce(t *testing.T) {
	api := new(MockAPI)
	api.On("WalletFor", mock.Anything, int64(7)).
		Return(nil, apiclient.ErrNotFound).Once()
	api.On("CreateWallet", mock.Anything, int64(7)).
		Return(&domain.Wallet{WalletID: 3, UserID: 7, Balance: 0}, nil).Once()
	api.On("WalletFor", mock.Anything, int64(7)).
		Return(&domain.Wallet{WalletID: 3, UserID: 7, Balance: 0}, nil).Once()

	svc := NewService(api)
	w, err := svc.Ensure(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), w.WalletID)
	api.AssertExpectations(t)
}

func TestEnsure_PropagatesUnexpectedErrors(t *testing.T) {
	api := new(MockAPI)
	api.On("WalletFor", mock.Anything, int64(7)).
		Return(nil, errors.New("gateway timeout"))

	svc := NewService(api)
	_, err := svc.Ensure(context.Background(), 7)

	require.Error(t, err)
	api.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything)
}

func TestTopUp_FetchedBalanceIsAuthoritative(t *testing.T) {
	api := new(MockAPI)
	api.On("TopUpWallet", mock.Anything, int64(7), float64(1000)).Return(nil)
	// The server applied the credit on top of an existing 500.
	api.On("WalletFor", mock.Anything, int64(7)).
		Return(&domain.Wallet{WalletID: 3, UserID: 7, Balance: 1500}, nil)

	svc := NewService(api)
	w, err := svc.TopUp(context.Background(), 7, 1000)

	require.NoError(t, err)
	assert.Equal(t, float64(1500), w.Balance)
	api.AssertExpectations(t)
}

func TestTopUp_RejectsNonPositiveAmounts(t *testing.T) {
	svc := NewService(new(MockAPI))

	for _, amount := range []float64{0, -250} {
		_, err := svc.TopUp(context.Background(), 7, amount)
		assert.Error(t, err)
	}
}

func TestTopUp_FailedPostSkipsReFetch(t *testing.T) {
	api := new(MockAPI)
	api.On("TopUpWallet", mock.Anything, int64(7), float64(1000)).
		Return(errors.New("gateway timeout"))

	svc := NewService(api)
	_, err := svc.TopUp(context.Background(), 7, 1000)

	require.Error(t, err)
	api.AssertNotCalled(t, "WalletFor", mock.Anything, mock.Anything)
}
