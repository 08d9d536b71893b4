package ports

import (
	"context"

	"payment-settlement/internal/core/domain"
)

// LedgerStore owns the wallet table and the outstanding payment orders.
// Every method is a single serializable critical section: a debit and its
// order insertion are never observable separately, nor are a redemption's
// lookup, credit and deletion. After Close, mutating methods return
// domain.ErrLedgerClosed.
type LedgerStore interface {
	// Balance returns the wallet's balance, or domain.ErrWalletUnknown.
	Balance(ctx context.Context, walletID string) (int64, error)

	// CreateOrder debits amount from the wallet and records a new outstanding
	// order, returning its id. Errors: domain.ErrWalletUnknown,
	// domain.ErrInsufficientFunds, domain.ErrLedgerClosed.
	CreateOrder(ctx context.Context, walletID string, amount int64) (int64, error)

	// Transfer redeems the order: credits the destination wallet by the
	// order's amount and deletes the order. Errors: domain.ErrOrderUnknown,
	// domain.ErrAmountMismatch, domain.ErrWalletUnknown,
	// domain.ErrLedgerClosed.
	Transfer(ctx context.Context, orderID int64, expectedAmount int64, destWalletID string) error

	// Close marks the ledger as terminating and returns the final pendency
	// count together with the closing wallet table. One-shot: repeated calls
	// return the same snapshot.
	Close(ctx context.Context) (int, []domain.Wallet)

	// Pendencies returns the current outstanding order count.
	Pendencies(ctx context.Context) int
}
