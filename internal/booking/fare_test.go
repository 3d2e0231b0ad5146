package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func TestTotalCost(t *testing.T) {
	total, err := TotalCost(5000, 2)
	assert.NoError(t, err)
	assert.Equal(t, float64(10000), total)

	total, err = TotalCost(3500, 1)
	assert.NoError(t, err)
	assert.Equal(t, float64(3500), total)

	_, err = TotalCost(5000, 0)
	assert.Error(t, err)

	_, err = TotalCost(5000, -3)
	assert.Error(t, err)
}

func TestCheckBalance_Sufficient(t *testing.T) {
	wallet := &domain.Wallet{Balance: 12000}
	assert.NoError(t, CheckBalance(wallet, 10000))
	assert.NoError(t, CheckBalance(wallet, 12000))
}

func TestCheckBalance_Insufficient(t *testing.T) {
	wallet := &domain.Wallet{Balance: 9000}
	err := CheckBalance(wallet, 10000)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestCheckBalance_UnknownWalletBlocks(t *testing.T) {
	err := CheckBalance(nil, 1)
	assert.ErrorIs(t, err, ErrWalletUnknown)
}
