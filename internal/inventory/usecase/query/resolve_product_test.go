package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	"github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type stubInventoryRepo struct {
	ids map[uint]bool
}

func (r *stubInventoryRepo) Create(*domain.Inventory) error                 { return nil }
func (r *stubInventoryRepo) FindByID(id uint) (*domain.Inventory, error)    { return nil, nil }
func (r *stubInventoryRepo) FindAll(int, int) ([]domain.Inventory, error)   { return nil, nil }
func (r *stubInventoryRepo) Save(*domain.Inventory) (*domain.Inventory, error) {
	return nil, nil
}
func (r *stubInventoryRepo) Delete(uint) error { return nil }
func (r *stubInventoryRepo) ExistsByID(id uint) (bool, error) {
	return r.ids[id], nil
}

type stubFoodRepo struct {
	byInventory map[uint]catalogdomain.Food
}

func (r *stubFoodRepo) Create(*catalogdomain.Food, int64) error             { return nil }
func (r *stubFoodRepo) FindByID(uint) (*catalogdomain.Food, error)          { return nil, nil }
func (r *stubFoodRepo) FindAll(int, int) ([]catalogdomain.Food, error)      { return nil, nil }
func (r *stubFoodRepo) Update(*catalogdomain.Food) error                    { return nil }
func (r *stubFoodRepo) Delete(uint) error                                   { return nil }
func (r *stubFoodRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	_, ok := r.byInventory[inventoryID]
	return ok, nil
}
func (r *stubFoodRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Food, error) {
	food, ok := r.byInventory[inventoryID]
	if !ok {
		return nil, httperr.NotFound("inventory", inventoryID)
	}
	return &food, nil
}

type stubToyRepo struct {
	byInventory map[uint]catalogdomain.Toy
}

func (r *stubToyRepo) Create(*catalogdomain.Toy, int64) error          { return nil }
func (r *stubToyRepo) FindByID(uint) (*catalogdomain.Toy, error)       { return nil, nil }
func (r *stubToyRepo) FindAll(int, int) ([]catalogdomain.Toy, error)   { return nil, nil }
func (r *stubToyRepo) Update(*catalogdomain.Toy) error                 { return nil }
func (r *stubToyRepo) Delete(uint) error                               { return nil }
func (r *stubToyRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	_, ok := r.byInventory[inventoryID]
	return ok, nil
}
func (r *stubToyRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Toy, error) {
	toy, ok := r.byInventory[inventoryID]
	if !ok {
		return nil, httperr.NotFound("inventory", inventoryID)
	}
	return &toy, nil
}

type stubMedicineRepo struct {
	byInventory map[uint]catalogdomain.Medicine
}

func (r *stubMedicineRepo) Create(*catalogdomain.Medicine, int64) error        { return nil }
func (r *stubMedicineRepo) FindByID(uint) (*catalogdomain.Medicine, error)     { return nil, nil }
func (r *stubMedicineRepo) FindAll(int, int) ([]catalogdomain.Medicine, error) { return nil, nil }
func (r *stubMedicineRepo) Update(*catalogdomain.Medicine) error               { return nil }
func (r *stubMedicineRepo) Delete(uint) error                                  { return nil }
func (r *stubMedicineRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	_, ok := r.byInventory[inventoryID]
	return ok, nil
}
func (r *stubMedicineRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Medicine, error) {
	medicine, ok := r.byInventory[inventoryID]
	if !ok {
		return nil, httperr.NotFound("inventory", inventoryID)
	}
	return &medicine, nil
}

func newStubs() (*stubInventoryRepo, *stubFoodRepo, *stubToyRepo, *stubMedicineRepo) {
	return &stubInventoryRepo{ids: make(map[uint]bool)},
		&stubFoodRepo{byInventory: make(map[uint]catalogdomain.Food)},
		&stubToyRepo{byInventory: make(map[uint]catalogdomain.Toy)},
		&stubMedicineRepo{byInventory: make(map[uint]catalogdomain.Medicine)}
}

func TestResolveProduct_Toy(t *testing.T) {
	inventories, foods, toys, medicines := newStubs()
	inventories.ids[7] = true
	toys.byInventory[7] = catalogdomain.Toy{ID: 3, InventoryID: 7}

	handler := NewResolveProductHandler(inventories, foods, toys, medicines)

	ref, err := handler.Handle(ResolveProductQuery{InventoryID: 7})
	require.NoError(t, err)
	require.Equal(t, catalogdomain.KindToy, ref.Kind)
	require.Equal(t, uint(3), ref.ProductID)
}

func TestResolveProduct_Medicine(t *testing.T) {
	inventories, foods, toys, medicines := newStubs()
	inventories.ids[2] = true
	medicines.byInventory[2] = catalogdomain.Medicine{ID: 9, InventoryID: 2}

	handler := NewResolveProductHandler(inventories, foods, toys, medicines)

	ref, err := handler.Handle(ResolveProductQuery{InventoryID: 2})
	require.NoError(t, err)
	require.Equal(t, catalogdomain.KindMedicine, ref.Kind)
	require.Equal(t, uint(9), ref.ProductID)
}

func TestResolveProduct_FoodWinsOverToy(t *testing.T) {
	inventories, foods, toys, medicines := newStubs()
	inventories.ids[5] = true
	foods.byInventory[5] = catalogdomain.Food{ID: 1, InventoryID: 5}
	toys.byInventory[5] = catalogdomain.Toy{ID: 2, InventoryID: 5}

	handler := NewResolveProductHandler(inventories, foods, toys, medicines)

	ref, err := handler.Handle(ResolveProductQuery{InventoryID: 5})
	require.NoError(t, err)
	require.Equal(t, catalogdomain.KindFood, ref.Kind)
	require.Equal(t, uint(1), ref.ProductID)
}

func TestResolveProduct_UnknownInventory(t *testing.T) {
	inventories, foods, toys, medicines := newStubs()

	handler := NewResolveProductHandler(inventories, foods, toys, medicines)

	_, err := handler.Handle(ResolveProductQuery{InventoryID: 11})
	require.Error(t, err)

	var notFound *httperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "inventory", notFound.Entity)
}

func TestResolveProduct_OrphanInventory(t *testing.T) {
	inventories, foods, toys, medicines := newStubs()
	inventories.ids[4] = true

	handler := NewResolveProductHandler(inventories, foods, toys, medicines)

	_, err := handler.Handle(ResolveProductQuery{InventoryID: 4})
	require.Error(t, err)

	var notFound *httperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.EqualError(t, err, "The inventory with id = 4 does not exist in the database.")
}
