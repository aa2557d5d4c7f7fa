package query

import (
	"github.com/tair/petshop-backend/internal/purchase/domain"
)

// ListPurchasesQuery lists purchases, optionally filtered by client
type ListPurchasesQuery struct {
	ClientID *uint
	Limit    int
	Offset   int
}

// ListPurchasesHandler handles purchase listings
type ListPurchasesHandler struct {
	purchases domain.PurchaseRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(purchases domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{purchases: purchases}
}

// Handle executes the query
func (h *ListPurchasesHandler) Handle(q ListPurchasesQuery) ([]domain.Purchase, error) {
	if q.ClientID != nil {
		return h.purchases.FindByClientID(*q.ClientID, q.Limit, q.Offset)
	}
	return h.purchases.FindAll(q.Limit, q.Offset)
}
