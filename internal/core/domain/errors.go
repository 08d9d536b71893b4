package domain

import "errors"

// Sentinel errors returned by the ledger store. The service layer maps them
// to protocol-level apperror values; the store stays transport-agnostic.
var (
	ErrWalletUnknown     = errors.New("wallet unknown")
	ErrOrderUnknown      = errors.New("payment order unknown")
	ErrAmountMismatch    = errors.New("payment order amount mismatch")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrLedgerClosed      = errors.New("ledger closed")
)
