package ports

import "context"

// LedgerClient is the storefront's handle on the remote wallet ledger.
// Implementations hold a single long-lived connection created at startup;
// per-call connection setup is deliberately avoided.
//
// Protocol rejections (order not found, amount mismatch, wallet not found)
// come back as *apperror.AppError values carrying the ledger's status code.
// Transport failures come back wrapped in apperror.ErrLedgerUnavailable.
type LedgerClient interface {
	Balance(ctx context.Context, walletID string) (int64, error)
	Transfer(ctx context.Context, req TransferRequest) error
	EndExecution(ctx context.Context) (int, error)
}
