package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Status carries
// the legacy numeric protocol code that clients print verbatim.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Status     int    `json:"status"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, status int, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Status:     status,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, status int, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Status:     status,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet ledger protocol (LEDGER) ----

// ErrWalletNotFound covers Balance and CreatePaymentOrder lookups
// (legacy status -1).
func ErrWalletNotFound() *AppError {
	return New("LEDGER_001", "Wallet not found", -1, http.StatusNotFound)
}

// ErrInsufficientFunds is returned when a payment order exceeds the payer's
// balance (legacy status -2).
func ErrInsufficientFunds() *AppError {
	return New("LEDGER_002", "Insufficient balance in wallet", -2, http.StatusPaymentRequired)
}

// ErrOrderNotFound is returned when a transfer references an unknown or
// already redeemed payment order (legacy status -1).
func ErrOrderNotFound() *AppError {
	return New("LEDGER_003", "Payment order not found", -1, http.StatusNotFound)
}

// ErrAmountMismatch is returned when the transfer's expected amount differs
// from the order's stored amount (legacy status -2).
func ErrAmountMismatch() *AppError {
	return New("LEDGER_004", "Payment order amount mismatch", -2, http.StatusConflict)
}

// ErrDestWalletNotFound is returned when the transfer destination wallet is
// unknown (legacy status -3).
func ErrDestWalletNotFound() *AppError {
	return New("LEDGER_005", "Destination wallet not found", -3, http.StatusNotFound)
}

// ErrLedgerShutdown is returned for mutating calls after EndExecution has
// been observed.
func ErrLedgerShutdown() *AppError {
	return New("LEDGER_006", "Ledger is shutting down", -1, http.StatusServiceUnavailable)
}

func ErrInvalidAmount() *AppError {
	return New("LEDGER_007", "Amount must be a positive integer", -2, http.StatusBadRequest)
}

// ---- Storefront protocol (STORE) ----

// ErrLedgerUnavailable is returned when the storefront cannot complete the
// remote call to the wallet ledger (legacy status -9).
func ErrLedgerUnavailable(err error) *AppError {
	return Wrap("STORE_001", "Wallet ledger unreachable", -9, http.StatusBadGateway, err)
}

func ErrStorefrontShutdown() *AppError {
	return New("STORE_002", "Storefront is shutting down", -9, http.StatusServiceUnavailable)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", -9, http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", -9, http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, -9, http.StatusBadRequest)
}
