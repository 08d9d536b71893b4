package dto

// CreateOrderRequest is the request body for creating a payment order.
type CreateOrderRequest struct {
	WalletID string `json:"wallet_id" binding:"required,max=100"`
	Amount   int64  `json:"amount" binding:"required"`
}

// TransferRequest is the request body for redeeming a payment order.
type TransferRequest struct {
	OrderID  int64  `json:"order_id" binding:"required,gt=0"`
	Amount   int64  `json:"amount" binding:"required"`
	WalletID string `json:"wallet_id" binding:"required,max=100"`
}

// SellRequest is the request body for a storefront sale.
type SellRequest struct {
	OrderID int64 `json:"order_id" binding:"required,gt=0"`
}

// BalanceResponse is the response for a wallet balance query.
type BalanceResponse struct {
	WalletID string `json:"wallet_id"`
	Balance  int64  `json:"balance"`
}

// OrderResponse is the response for a created payment order.
type OrderResponse struct {
	OrderID int64 `json:"order_id"`
	Amount  int64 `json:"amount"`
}

// TransferResponse is the response for a completed transfer.
type TransferResponse struct {
	Status int `json:"status"`
}

// ShutdownResponse is the ledger's final report.
type ShutdownResponse struct {
	Pendencies int `json:"pendencies"`
}

// PriceResponse is the response for the storefront price query.
type PriceResponse struct {
	Price int64 `json:"price"`
}

// SellResponse is the response for a completed sale.
type SellResponse struct {
	Status        int   `json:"status"`
	SellerBalance int64 `json:"seller_balance"`
}

// StorefrontShutdownResponse is the storefront's final report.
type StorefrontShutdownResponse struct {
	SellerBalance int64 `json:"seller_balance"`
	Pendencies    int   `json:"pendencies"`
}
