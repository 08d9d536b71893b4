package domain

// PaymentOrder is a one-time claim on a fixed amount of money. It is created
// by debiting the payer's wallet and redeemed exactly once by a transfer that
// credits a destination wallet and deletes the order. Ids are assigned by the
// ledger starting at 1, strictly increasing, and never reused even after
// redemption.
type PaymentOrder struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

// StatusOK is the wire status for a successful transfer or sale. The error
// statuses of the protocol are negative and carried by apperror.AppError.
const StatusOK = 0
