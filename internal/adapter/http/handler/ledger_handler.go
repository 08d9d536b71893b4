package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the wallet ledger's endpoints.
type LedgerHandler struct {
	svc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// GetBalance handles GET /api/v1/wallets/:id/balance.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	walletID := c.Param("id")

	balance, err := h.svc.GetBalance(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		WalletID: walletID,
		Balance:  balance,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (h *LedgerHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	orderID, err := h.svc.CreatePaymentOrder(c.Request.Context(), req.WalletID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OrderResponse{
		OrderID: orderID,
		Amount:  req.Amount,
	})
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.Transfer(c.Request.Context(), ports.TransferRequest{
		OrderID:        req.OrderID,
		ExpectedAmount: req.Amount,
		DestWalletID:   req.WalletID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{Status: 0})
}

// Shutdown handles POST /api/v1/shutdown.
func (h *LedgerHandler) Shutdown(c *gin.Context) {
	pendencies, err := h.svc.Shutdown(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ShutdownResponse{Pendencies: pendencies})
}
