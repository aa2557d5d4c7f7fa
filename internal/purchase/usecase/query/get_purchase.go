package query

import (
	"github.com/tair/petshop-backend/internal/purchase/domain"
)

// GetPurchaseQuery fetches one purchase by id
type GetPurchaseQuery struct {
	PurchaseID uint
}

// GetPurchaseHandler handles purchase lookups
type GetPurchaseHandler struct {
	purchases domain.PurchaseRepository
}

// NewGetPurchaseHandler creates a new get purchase handler
func NewGetPurchaseHandler(purchases domain.PurchaseRepository) *GetPurchaseHandler {
	return &GetPurchaseHandler{purchases: purchases}
}

// Handle executes the query
func (h *GetPurchaseHandler) Handle(q GetPurchaseQuery) (*domain.Purchase, error) {
	return h.purchases.FindByID(q.PurchaseID)
}
