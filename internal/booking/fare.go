package booking

import (
	"errors"
	"fmt"

	"github.com/flyawayhq/flyaway/internal/domain"
)

var (
	// ErrInsufficientBalance blocks confirmation before any network call.
	ErrInsufficientBalance = errors.New("insufficient balance, please top up your wallet")
	// ErrWalletUnknown means the wallet has not loaded; an unknown balance
	// never counts as sufficient.
	ErrWalletUnknown = errors.New("wallet balance is not available yet")
)

// TotalCost is unit price times passenger count. Count below one is a caller
// bug, not user input.
func TotalCost(unitPrice float64, passengerCount int) (float64, error) {
	if passengerCount < 1 {
		return 0, fmt.Errorf("passenger count must be at least 1, got %d", passengerCount)
	}
	return unitPrice * float64(passengerCount), nil
}

// CheckBalance permits booking iff the wallet is known and covers the total.
func CheckBalance(wallet *domain.Wallet, totalCost float64) error {
	if wallet == nil {
		return ErrWalletUnknown
	}
	if wallet.Balance < totalCost {
		return ErrInsufficientBalance
	}
	return nil
}
