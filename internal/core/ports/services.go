package ports

import "context"

// --- Service Ports (Business Logic) ---

// LedgerService defines the wallet ledger's remote contract.
type LedgerService interface {
	GetBalance(ctx context.Context, walletID string) (int64, error)
	CreatePaymentOrder(ctx context.Context, walletID string, amount int64) (int64, error)
	Transfer(ctx context.Context, req TransferRequest) error
	// Shutdown returns the final pendency count and marks the service as
	// terminating. Mutating calls arriving afterwards are rejected.
	Shutdown(ctx context.Context) (int, error)
}

// TransferRequest holds validated input for a payment order redemption.
type TransferRequest struct {
	OrderID        int64
	ExpectedAmount int64
	DestWalletID   string
}

// StorefrontService defines the storefront's remote contract.
type StorefrontService interface {
	GetPrice(ctx context.Context) int64
	// Sell redeems a payment order against the wallet ledger. On success the
	// seller's locally cached balance grows by the product price.
	Sell(ctx context.Context, orderID int64) (*SellResult, error)
	// Shutdown stops the wallet ledger first, then the storefront itself.
	Shutdown(ctx context.Context) (*StorefrontShutdownResult, error)
}

// SellResult holds the outcome of a successful sale.
type SellResult struct {
	Status        int
	SellerBalance int64
}

// StorefrontShutdownResult is the final accounting report of a run.
type StorefrontShutdownResult struct {
	SellerBalance int64
	Pendencies    int
}
