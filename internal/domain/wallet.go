package domain

type Wallet struct {
	WalletID int64   `json:"walletId"`
	UserID   int64   `json:"userId"`
	Balance  float64 `json:"balance"`
}
