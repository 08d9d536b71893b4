package domain

// Wallet is an account holding a non-negative integer balance, identified by
// an opaque string assigned externally. Wallets are created once at ledger
// startup from the seed table and never created or deleted afterwards.
type Wallet struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}
