package command

import (
	"context"
	"sort"

	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type fakeInventoryRepo struct {
	records map[uint]inventorydomain.Inventory
	nextID  uint
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: make(map[uint]inventorydomain.Inventory), nextID: 1}
}

func (r *fakeInventoryRepo) add(quantity int64) uint {
	id := r.nextID
	r.nextID++
	r.records[id] = inventorydomain.Inventory{ID: id, AvailableQuantity: quantity}
	return id
}

func (r *fakeInventoryRepo) Create(inv *inventorydomain.Inventory) error {
	inv.ID = r.nextID
	r.nextID++
	r.records[inv.ID] = *inv
	return nil
}

func (r *fakeInventoryRepo) FindByID(id uint) (*inventorydomain.Inventory, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("inventory", id)
	}
	return &rec, nil
}

func (r *fakeInventoryRepo) FindAll(limit, offset int) ([]inventorydomain.Inventory, error) {
	var out []inventorydomain.Inventory
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInventoryRepo) Save(inv *inventorydomain.Inventory) (*inventorydomain.Inventory, error) {
	if inv.ID == 0 {
		inv.ID = r.nextID
		r.nextID++
	}
	r.records[inv.ID] = *inv
	saved := r.records[inv.ID]
	return &saved, nil
}

func (r *fakeInventoryRepo) Delete(id uint) error {
	if _, ok := r.records[id]; !ok {
		return httperr.NotFound("inventory", id)
	}
	delete(r.records, id)
	return nil
}

func (r *fakeInventoryRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.records[id]
	return ok, nil
}

type fakeFoodRepo struct {
	records map[uint]catalogdomain.Food
	nextID  uint
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{records: make(map[uint]catalogdomain.Food), nextID: 1}
}

func (r *fakeFoodRepo) add(inventoryID uint, price float64) uint {
	id := r.nextID
	r.nextID++
	r.records[id] = catalogdomain.Food{ID: id, Price: price, InventoryID: inventoryID}
	return id
}

func (r *fakeFoodRepo) Create(food *catalogdomain.Food, initialQuantity int64) error {
	food.ID = r.nextID
	r.nextID++
	r.records[food.ID] = *food
	return nil
}

func (r *fakeFoodRepo) FindByID(id uint) (*catalogdomain.Food, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("food item", id)
	}
	return &rec, nil
}

func (r *fakeFoodRepo) FindAll(limit, offset int) ([]catalogdomain.Food, error) {
	return nil, nil
}

func (r *fakeFoodRepo) Update(food *catalogdomain.Food) error {
	r.records[food.ID] = *food
	return nil
}

func (r *fakeFoodRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeFoodRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFoodRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Food, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			found := rec
			return &found, nil
		}
	}
	return nil, httperr.NotFound("inventory", inventoryID)
}

type fakeToyRepo struct {
	records map[uint]catalogdomain.Toy
	nextID  uint
}

func newFakeToyRepo() *fakeToyRepo {
	return &fakeToyRepo{records: make(map[uint]catalogdomain.Toy), nextID: 1}
}

func (r *fakeToyRepo) add(inventoryID uint, price float64) uint {
	id := r.nextID
	r.nextID++
	r.records[id] = catalogdomain.Toy{ID: id, Price: price, InventoryID: inventoryID}
	return id
}

func (r *fakeToyRepo) Create(toy *catalogdomain.Toy, initialQuantity int64) error {
	toy.ID = r.nextID
	r.nextID++
	r.records[toy.ID] = *toy
	return nil
}

func (r *fakeToyRepo) FindByID(id uint) (*catalogdomain.Toy, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("toy", id)
	}
	return &rec, nil
}

func (r *fakeToyRepo) FindAll(limit, offset int) ([]catalogdomain.Toy, error) {
	return nil, nil
}

func (r *fakeToyRepo) Update(toy *catalogdomain.Toy) error {
	r.records[toy.ID] = *toy
	return nil
}

func (r *fakeToyRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeToyRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeToyRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Toy, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			found := rec
			return &found, nil
		}
	}
	return nil, httperr.NotFound("inventory", inventoryID)
}

type fakeMedicineRepo struct {
	records map[uint]catalogdomain.Medicine
	nextID  uint
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{records: make(map[uint]catalogdomain.Medicine), nextID: 1}
}

func (r *fakeMedicineRepo) add(inventoryID uint, price float64) uint {
	id := r.nextID
	r.nextID++
	r.records[id] = catalogdomain.Medicine{ID: id, Price: price, InventoryID: inventoryID}
	return id
}

func (r *fakeMedicineRepo) Create(medicine *catalogdomain.Medicine, initialQuantity int64) error {
	medicine.ID = r.nextID
	r.nextID++
	r.records[medicine.ID] = *medicine
	return nil
}

func (r *fakeMedicineRepo) FindByID(id uint) (*catalogdomain.Medicine, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("medicine", id)
	}
	return &rec, nil
}

func (r *fakeMedicineRepo) FindAll(limit, offset int) ([]catalogdomain.Medicine, error) {
	return nil, nil
}

func (r *fakeMedicineRepo) Update(medicine *catalogdomain.Medicine) error {
	r.records[medicine.ID] = *medicine
	return nil
}

func (r *fakeMedicineRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeMedicineRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMedicineRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Medicine, error) {
	for _, rec := range r.records {
		if rec.InventoryID == inventoryID {
			found := rec
			return &found, nil
		}
	}
	return nil, httperr.NotFound("inventory", inventoryID)
}

type fakePurchaseRepo struct {
	records map[uint]domain.Purchase
	nextID  uint
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{records: make(map[uint]domain.Purchase), nextID: 1}
}

func (r *fakePurchaseRepo) Create(purchase *domain.Purchase) error {
	purchase.ID = r.nextID
	r.nextID++
	r.records[purchase.ID] = *purchase
	return nil
}

func (r *fakePurchaseRepo) FindByID(id uint) (*domain.Purchase, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("purchase", id)
	}
	return &rec, nil
}

func (r *fakePurchaseRepo) FindAll(limit, offset int) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePurchaseRepo) FindByClientID(clientID uint, limit, offset int) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, rec := range r.records {
		if rec.ClientID == clientID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePurchaseRepo) Delete(id uint) error {
	if _, ok := r.records[id]; !ok {
		return httperr.NotFound("purchase", id)
	}
	delete(r.records, id)
	return nil
}

func (r *fakePurchaseRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.records[id]
	return ok, nil
}

func (r *fakePurchaseRepo) Count() (int64, error) {
	return int64(len(r.records)), nil
}

type fakeItemRepo struct {
	records map[uint]domain.Item
	nextID  uint
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{records: make(map[uint]domain.Item), nextID: 1}
}

func (r *fakeItemRepo) Create(item *domain.Item) error {
	item.ID = r.nextID
	r.nextID++
	r.records[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) FindByPurchaseID(purchaseID uint) ([]domain.Item, error) {
	var out []domain.Item
	for _, rec := range r.records {
		if rec.PurchaseID == purchaseID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

type fakeClientRepo struct {
	records map[uint]clientdomain.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{records: make(map[uint]clientdomain.Client), nextID: 1}
}

func (r *fakeClientRepo) add() uint {
	id := r.nextID
	r.nextID++
	r.records[id] = clientdomain.Client{ID: id, FirstName: "Ana", LastName: "Pop"}
	return id
}

func (r *fakeClientRepo) Create(client *clientdomain.Client) error {
	client.ID = r.nextID
	r.nextID++
	r.records[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) FindByID(id uint) (*clientdomain.Client, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, httperr.NotFound("client", id)
	}
	return &rec, nil
}

func (r *fakeClientRepo) FindAll(limit, offset int) ([]clientdomain.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(client *clientdomain.Client) error {
	r.records[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeClientRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.records[id]
	return ok, nil
}

// fakeUnitOfWork simulates transactional semantics by snapshotting every
// store before running the callback and restoring the snapshots if the
// callback fails.
type fakeUnitOfWork struct {
	inventories *fakeInventoryRepo
	foods       *fakeFoodRepo
	toys        *fakeToyRepo
	medicines   *fakeMedicineRepo
	purchases   *fakePurchaseRepo
	items       *fakeItemRepo
}

func (u *fakeUnitOfWork) Within(ctx context.Context, fn func(repos domain.TxRepos) error) error {
	invSnap := copyMap(u.inventories.records)
	foodSnap := copyMap(u.foods.records)
	toySnap := copyMap(u.toys.records)
	medSnap := copyMap(u.medicines.records)
	purchaseSnap := copyMap(u.purchases.records)
	itemSnap := copyMap(u.items.records)

	err := fn(domain.TxRepos{
		Inventories: u.inventories,
		Foods:       u.foods,
		Toys:        u.toys,
		Medicines:   u.medicines,
		Purchases:   u.purchases,
		Items:       u.items,
	})
	if err != nil {
		u.inventories.records = invSnap
		u.foods.records = foodSnap
		u.toys.records = toySnap
		u.medicines.records = medSnap
		u.purchases.records = purchaseSnap
		u.items.records = itemSnap
	}
	return err
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type recordingPublisher struct {
	completed []*domain.Purchase
	cancelled []*domain.Purchase
}

func (p *recordingPublisher) PublishPurchaseCompleted(ctx context.Context, purchase *domain.Purchase) error {
	p.completed = append(p.completed, purchase)
	return nil
}

func (p *recordingPublisher) PublishPurchaseCancelled(ctx context.Context, purchase *domain.Purchase) error {
	p.cancelled = append(p.cancelled, purchase)
	return nil
}

type fixture struct {
	inventories *fakeInventoryRepo
	foods       *fakeFoodRepo
	toys        *fakeToyRepo
	medicines   *fakeMedicineRepo
	purchases   *fakePurchaseRepo
	items       *fakeItemRepo
	clients     *fakeClientRepo
	uow         *fakeUnitOfWork
	events      *recordingPublisher
}

func newFixture() *fixture {
	f := &fixture{
		inventories: newFakeInventoryRepo(),
		foods:       newFakeFoodRepo(),
		toys:        newFakeToyRepo(),
		medicines:   newFakeMedicineRepo(),
		purchases:   newFakePurchaseRepo(),
		items:       newFakeItemRepo(),
		clients:     newFakeClientRepo(),
		events:      &recordingPublisher{},
	}
	f.uow = &fakeUnitOfWork{
		inventories: f.inventories,
		foods:       f.foods,
		toys:        f.toys,
		medicines:   f.medicines,
		purchases:   f.purchases,
		items:       f.items,
	}
	return f
}

func (f *fixture) createHandler() *CreatePurchaseHandler {
	return NewCreatePurchaseHandler(f.uow, f.clients, f.events)
}

func (f *fixture) cancelHandler() *CancelPurchaseHandler {
	return NewCancelPurchaseHandler(f.uow, f.events)
}
