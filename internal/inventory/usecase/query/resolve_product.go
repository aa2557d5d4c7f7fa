package query

import (
	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	"github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

// ResolveProductQuery asks which product backs an inventory record
type ResolveProductQuery struct {
	InventoryID uint
}

// ResolveProductHandler maps an inventory record to its owning product.
// An inventory record backs at most one of food, toy or medicine; the
// stores are probed in that fixed priority order and the first match wins.
type ResolveProductHandler struct {
	inventories domain.InventoryRepository
	foods       catalogdomain.FoodRepository
	toys        catalogdomain.ToyRepository
	medicines   catalogdomain.MedicineRepository
}

// NewResolveProductHandler creates a new resolve product handler
func NewResolveProductHandler(
	inventories domain.InventoryRepository,
	foods catalogdomain.FoodRepository,
	toys catalogdomain.ToyRepository,
	medicines catalogdomain.MedicineRepository,
) *ResolveProductHandler {
	return &ResolveProductHandler{
		inventories: inventories,
		foods:       foods,
		toys:        toys,
		medicines:   medicines,
	}
}

// Handle executes the lookup
func (h *ResolveProductHandler) Handle(q ResolveProductQuery) (*catalogdomain.ProductRef, error) {
	exists, err := h.inventories.ExistsByID(q.InventoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFound("inventory", q.InventoryID)
	}

	if ok, err := h.foods.ExistsByInventoryID(q.InventoryID); err != nil {
		return nil, err
	} else if ok {
		food, err := h.foods.FindByInventoryID(q.InventoryID)
		if err != nil {
			return nil, err
		}
		return &catalogdomain.ProductRef{Kind: catalogdomain.KindFood, ProductID: food.ID}, nil
	}

	if ok, err := h.toys.ExistsByInventoryID(q.InventoryID); err != nil {
		return nil, err
	} else if ok {
		toy, err := h.toys.FindByInventoryID(q.InventoryID)
		if err != nil {
			return nil, err
		}
		return &catalogdomain.ProductRef{Kind: catalogdomain.KindToy, ProductID: toy.ID}, nil
	}

	if ok, err := h.medicines.ExistsByInventoryID(q.InventoryID); err != nil {
		return nil, err
	} else if ok {
		medicine, err := h.medicines.FindByInventoryID(q.InventoryID)
		if err != nil {
			return nil, err
		}
		return &catalogdomain.ProductRef{Kind: catalogdomain.KindMedicine, ProductID: medicine.ID}, nil
	}

	// Orphan inventory record: exists but backs no product
	return nil, httperr.NotFound("inventory", q.InventoryID)
}
