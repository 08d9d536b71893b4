package handler

import (
	"payment-settlement/internal/adapter/http/dto"
	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
	"payment-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler handles the storefront's endpoints.
type StorefrontHandler struct {
	svc ports.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(svc ports.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{svc: svc}
}

// GetPrice handles GET /api/v1/price.
func (h *StorefrontHandler) GetPrice(c *gin.Context) {
	response.OK(c, dto.PriceResponse{
		Price: h.svc.GetPrice(c.Request.Context()),
	})
}

// Sell handles POST /api/v1/sales.
func (h *StorefrontHandler) Sell(c *gin.Context) {
	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.Sell(c.Request.Context(), req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SellResponse{
		Status:        result.Status,
		SellerBalance: result.SellerBalance,
	})
}

// Shutdown handles POST /api/v1/shutdown.
func (h *StorefrontHandler) Shutdown(c *gin.Context) {
	result, err := h.svc.Shutdown(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StorefrontShutdownResponse{
		SellerBalance: result.SellerBalance,
		Pendencies:    result.Pendencies,
	})
}
