package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/internal/purchase/usecase/command"
	"github.com/tair/petshop-backend/internal/purchase/usecase/query"
	"github.com/tair/petshop-backend/pkg/httperr"
)

// memStore backs every repository fake with resettable maps.
type memStore struct {
	inventories map[uint]inventorydomain.Inventory
	foods       map[uint]catalogdomain.Food
	clients     map[uint]clientdomain.Client
	purchases   map[uint]domain.Purchase
	items       map[uint]domain.Item
	nextID      uint
}

func (s *memStore) reset() {
	s.inventories = make(map[uint]inventorydomain.Inventory)
	s.foods = make(map[uint]catalogdomain.Food)
	s.clients = make(map[uint]clientdomain.Client)
	s.purchases = make(map[uint]domain.Purchase)
	s.items = make(map[uint]domain.Item)
	s.nextID = 1
}

func (s *memStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) addClient() uint {
	id := s.id()
	s.clients[id] = clientdomain.Client{ID: id}
	return id
}

func (s *memStore) addFood(quantity int64, price float64) uint {
	invID := s.id()
	s.inventories[invID] = inventorydomain.Inventory{ID: invID, AvailableQuantity: quantity}
	foodID := s.id()
	s.foods[foodID] = catalogdomain.Food{ID: foodID, Price: price, InventoryID: invID}
	return invID
}

type memInventoryRepo struct{ s *memStore }

func (r memInventoryRepo) Create(inv *inventorydomain.Inventory) error {
	inv.ID = r.s.id()
	r.s.inventories[inv.ID] = *inv
	return nil
}

func (r memInventoryRepo) FindByID(id uint) (*inventorydomain.Inventory, error) {
	rec, ok := r.s.inventories[id]
	if !ok {
		return nil, httperr.NotFound("inventory", id)
	}
	return &rec, nil
}

func (r memInventoryRepo) FindAll(int, int) ([]inventorydomain.Inventory, error) { return nil, nil }

func (r memInventoryRepo) Save(inv *inventorydomain.Inventory) (*inventorydomain.Inventory, error) {
	r.s.inventories[inv.ID] = *inv
	saved := r.s.inventories[inv.ID]
	return &saved, nil
}

func (r memInventoryRepo) Delete(id uint) error { delete(r.s.inventories, id); return nil }

func (r memInventoryRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.s.inventories[id]
	return ok, nil
}

type memFoodRepo struct{ s *memStore }

func (r memFoodRepo) Create(food *catalogdomain.Food, _ int64) error {
	food.ID = r.s.id()
	r.s.foods[food.ID] = *food
	return nil
}

func (r memFoodRepo) FindByID(id uint) (*catalogdomain.Food, error) {
	rec, ok := r.s.foods[id]
	if !ok {
		return nil, httperr.NotFound("food item", id)
	}
	return &rec, nil
}

func (r memFoodRepo) FindAll(int, int) ([]catalogdomain.Food, error) { return nil, nil }
func (r memFoodRepo) Update(*catalogdomain.Food) error               { return nil }
func (r memFoodRepo) Delete(uint) error                              { return nil }

func (r memFoodRepo) ExistsByInventoryID(inventoryID uint) (bool, error) {
	for _, rec := range r.s.foods {
		if rec.InventoryID == inventoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r memFoodRepo) FindByInventoryID(inventoryID uint) (*catalogdomain.Food, error) {
	for _, rec := range r.s.foods {
		if rec.InventoryID == inventoryID {
			found := rec
			return &found, nil
		}
	}
	return nil, httperr.NotFound("inventory", inventoryID)
}

type emptyToyRepo struct{}

func (emptyToyRepo) Create(*catalogdomain.Toy, int64) error           { return nil }
func (emptyToyRepo) FindByID(uint) (*catalogdomain.Toy, error)        { return nil, nil }
func (emptyToyRepo) FindAll(int, int) ([]catalogdomain.Toy, error)    { return nil, nil }
func (emptyToyRepo) Update(*catalogdomain.Toy) error                  { return nil }
func (emptyToyRepo) Delete(uint) error                                { return nil }
func (emptyToyRepo) ExistsByInventoryID(uint) (bool, error)           { return false, nil }
func (emptyToyRepo) FindByInventoryID(id uint) (*catalogdomain.Toy, error) {
	return nil, httperr.NotFound("inventory", id)
}

type emptyMedicineRepo struct{}

func (emptyMedicineRepo) Create(*catalogdomain.Medicine, int64) error        { return nil }
func (emptyMedicineRepo) FindByID(uint) (*catalogdomain.Medicine, error)     { return nil, nil }
func (emptyMedicineRepo) FindAll(int, int) ([]catalogdomain.Medicine, error) { return nil, nil }
func (emptyMedicineRepo) Update(*catalogdomain.Medicine) error               { return nil }
func (emptyMedicineRepo) Delete(uint) error                                  { return nil }
func (emptyMedicineRepo) ExistsByInventoryID(uint) (bool, error)             { return false, nil }
func (emptyMedicineRepo) FindByInventoryID(id uint) (*catalogdomain.Medicine, error) {
	return nil, httperr.NotFound("inventory", id)
}

type memClientRepo struct{ s *memStore }

func (r memClientRepo) Create(client *clientdomain.Client) error {
	client.ID = r.s.id()
	r.s.clients[client.ID] = *client
	return nil
}

func (r memClientRepo) FindByID(id uint) (*clientdomain.Client, error) {
	rec, ok := r.s.clients[id]
	if !ok {
		return nil, httperr.NotFound("client", id)
	}
	return &rec, nil
}

func (r memClientRepo) FindAll(int, int) ([]clientdomain.Client, error) { return nil, nil }
func (r memClientRepo) Update(*clientdomain.Client) error               { return nil }
func (r memClientRepo) Delete(uint) error                               { return nil }

func (r memClientRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.s.clients[id]
	return ok, nil
}

type memPurchaseRepo struct{ s *memStore }

func (r memPurchaseRepo) Create(purchase *domain.Purchase) error {
	purchase.ID = r.s.id()
	r.s.purchases[purchase.ID] = *purchase
	return nil
}

func (r memPurchaseRepo) FindByID(id uint) (*domain.Purchase, error) {
	rec, ok := r.s.purchases[id]
	if !ok {
		return nil, httperr.NotFound("purchase", id)
	}
	items, _ := memItemRepo{r.s}.FindByPurchaseID(id)
	rec.Items = items
	return &rec, nil
}

func (r memPurchaseRepo) FindAll(int, int) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, rec := range r.s.purchases {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memPurchaseRepo) FindByClientID(clientID uint, _, _ int) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, rec := range r.s.purchases {
		if rec.ClientID == clientID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memPurchaseRepo) Delete(id uint) error {
	if _, ok := r.s.purchases[id]; !ok {
		return httperr.NotFound("purchase", id)
	}
	delete(r.s.purchases, id)
	return nil
}

func (r memPurchaseRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.s.purchases[id]
	return ok, nil
}

func (r memPurchaseRepo) Count() (int64, error) {
	return int64(len(r.s.purchases)), nil
}

type memItemRepo struct{ s *memStore }

func (r memItemRepo) Create(item *domain.Item) error {
	item.ID = r.s.id()
	r.s.items[item.ID] = *item
	return nil
}

func (r memItemRepo) FindByPurchaseID(purchaseID uint) ([]domain.Item, error) {
	var out []domain.Item
	for _, rec := range r.s.items {
		if rec.PurchaseID == purchaseID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memItemRepo) Delete(id uint) error { delete(r.s.items, id); return nil }

type memUnitOfWork struct{ s *memStore }

func (u memUnitOfWork) Within(ctx context.Context, fn func(repos domain.TxRepos) error) error {
	invSnap := make(map[uint]inventorydomain.Inventory, len(u.s.inventories))
	for k, v := range u.s.inventories {
		invSnap[k] = v
	}
	purchaseSnap := make(map[uint]domain.Purchase, len(u.s.purchases))
	for k, v := range u.s.purchases {
		purchaseSnap[k] = v
	}
	itemSnap := make(map[uint]domain.Item, len(u.s.items))
	for k, v := range u.s.items {
		itemSnap[k] = v
	}

	err := fn(domain.TxRepos{
		Inventories: memInventoryRepo{u.s},
		Foods:       memFoodRepo{u.s},
		Toys:        emptyToyRepo{},
		Medicines:   emptyMedicineRepo{},
		Purchases:   memPurchaseRepo{u.s},
		Items:       memItemRepo{u.s},
	})
	if err != nil {
		u.s.inventories = invSnap
		u.s.purchases = purchaseSnap
		u.s.items = itemSnap
	}
	return err
}

// Prometheus collectors register once per process, so the handler under
// test is shared and the backing store reset between tests.
var (
	setupOnce   sync.Once
	sharedStore *memStore
	sharedMux   *mux.Router
)

func newTestServer(t *testing.T) (*mux.Router, *memStore) {
	t.Helper()
	setupOnce.Do(func() {
		sharedStore = &memStore{}
		sharedStore.reset()

		uow := memUnitOfWork{sharedStore}
		purchases := memPurchaseRepo{sharedStore}
		clients := memClientRepo{sharedStore}

		handler := NewPurchaseHandler(
			command.NewCreatePurchaseHandler(uow, clients, nil),
			command.NewCancelPurchaseHandler(uow, nil),
			query.NewGetPurchaseHandler(purchases),
			query.NewListPurchasesHandler(purchases),
			purchases,
		)

		sharedMux = mux.NewRouter()
		handler.RegisterRoutes(sharedMux)
	})
	sharedStore.reset()
	return sharedMux, sharedStore
}

func doRequest(router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePurchaseEndpoint(t *testing.T) {
	router, store := newTestServer(t)
	clientID := store.addClient()
	invID := store.addFood(50, 3.0)

	rec := doRequest(router, http.MethodPost, "/purchases", map[string]interface{}{
		"clientId": clientID,
		"lineItems": []map[string]interface{}{
			{"inventoryId": invID, "orderedQuantity": 5},
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID        uint    `json:"id"`
		Reference string  `json:"reference"`
		ClientID  uint    `json:"clientId"`
		Price     float64 `json:"price"`
		LineItems []struct {
			InventoryID     uint  `json:"inventoryId"`
			OrderedQuantity int64 `json:"orderedQuantity"`
		} `json:"lineItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	require.NotEmpty(t, resp.Reference)
	require.Equal(t, clientID, resp.ClientID)
	require.InDelta(t, 15.0, resp.Price, 1e-9)
	require.Len(t, resp.LineItems, 1)
	require.Equal(t, invID, resp.LineItems[0].InventoryID)

	require.Equal(t, int64(45), store.inventories[invID].AvailableQuantity)
}

func TestCreatePurchaseEndpoint_InsufficientStock(t *testing.T) {
	router, store := newTestServer(t)
	clientID := store.addClient()
	invID := store.addFood(2, 3.0)

	rec := doRequest(router, http.MethodPost, "/purchases", map[string]interface{}{
		"clientId": clientID,
		"lineItems": []map[string]interface{}{
			{"inventoryId": invID, "orderedQuantity": 3},
		},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httperr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusBadRequest, body.Code)
	require.Equal(t, "the purchase cannot be confirmed; not enough items in inventory", body.Message)

	require.Equal(t, int64(2), store.inventories[invID].AvailableQuantity)
}

func TestCreatePurchaseEndpoint_UnknownInventory(t *testing.T) {
	router, store := newTestServer(t)
	clientID := store.addClient()

	rec := doRequest(router, http.MethodPost, "/purchases", map[string]interface{}{
		"clientId": clientID,
		"lineItems": []map[string]interface{}{
			{"inventoryId": 99, "orderedQuantity": 1},
		},
	})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httperr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusNotFound, body.Code)
	require.Equal(t, "The inventory with id = 99 does not exist in the database.", body.Message)
}

func TestCancelPurchaseEndpoint(t *testing.T) {
	router, store := newTestServer(t)
	clientID := store.addClient()
	invID := store.addFood(50, 3.0)

	created := doRequest(router, http.MethodPost, "/purchases", map[string]interface{}{
		"clientId": clientID,
		"lineItems": []map[string]interface{}{
			{"inventoryId": invID, "orderedQuantity": 5},
		},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	rec := doRequest(router, http.MethodDelete, fmt.Sprintf("/purchases/%d", resp.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())

	require.Equal(t, int64(50), store.inventories[invID].AvailableQuantity)
	require.Empty(t, store.purchases)
}

func TestCancelPurchaseEndpoint_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(router, http.MethodDelete, "/purchases/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httperr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "The purchase with id = 42 does not exist in the database.", body.Message)
}

func TestListPurchasesEndpoint_FilterByClient(t *testing.T) {
	router, store := newTestServer(t)
	firstClient := store.addClient()
	secondClient := store.addClient()
	invID := store.addFood(100, 1.0)

	for _, clientID := range []uint{firstClient, firstClient, secondClient} {
		rec := doRequest(router, http.MethodPost, "/purchases", map[string]interface{}{
			"clientId": clientID,
			"lineItems": []map[string]interface{}{
				{"inventoryId": invID, "orderedQuantity": 1},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(router, http.MethodGet, fmt.Sprintf("/purchases?clientId=%d", firstClient), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var purchases []struct {
		ClientID uint `json:"clientId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchases))
	require.Len(t, purchases, 2)
	for _, p := range purchases {
		require.Equal(t, firstClient, p.ClientID)
	}

	all := doRequest(router, http.MethodGet, "/purchases", nil)
	require.Equal(t, http.StatusOK, all.Code)
	require.NoError(t, json.Unmarshal(all.Body.Bytes(), &purchases))
	require.Len(t, purchases, 3)
}

func TestGetPurchaseEndpoint_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/purchases/7", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
