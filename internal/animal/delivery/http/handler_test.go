package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/tair/petshop-backend/internal/animal/domain"
	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type fakeAnimalRepo struct {
	animals map[uint]domain.Animal
	nextID  uint
}

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{animals: make(map[uint]domain.Animal), nextID: 1}
}

func (r *fakeAnimalRepo) Create(animal *domain.Animal) error {
	animal.ID = r.nextID
	r.nextID++
	r.animals[animal.ID] = *animal
	return nil
}

func (r *fakeAnimalRepo) FindByID(id uint) (*domain.Animal, error) {
	rec, ok := r.animals[id]
	if !ok {
		return nil, httperr.NotFound("animal", id)
	}
	return &rec, nil
}

func (r *fakeAnimalRepo) FindByOwnerID(ownerID uint) ([]domain.Animal, error) {
	var out []domain.Animal
	for _, rec := range r.animals {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAnimalRepo) FindAll(int, int) ([]domain.Animal, error) {
	var out []domain.Animal
	for _, rec := range r.animals {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAnimalRepo) Update(animal *domain.Animal) error {
	if _, ok := r.animals[animal.ID]; !ok {
		return httperr.NotFound("animal", animal.ID)
	}
	r.animals[animal.ID] = *animal
	return nil
}

func (r *fakeAnimalRepo) Delete(id uint) error {
	if _, ok := r.animals[id]; !ok {
		return httperr.NotFound("animal", id)
	}
	delete(r.animals, id)
	return nil
}

type fakeClientRepo struct {
	clients map[uint]clientdomain.Client
}

func (r *fakeClientRepo) Create(client *clientdomain.Client) error      { return nil }
func (r *fakeClientRepo) FindByID(uint) (*clientdomain.Client, error)   { return nil, nil }
func (r *fakeClientRepo) FindAll(int, int) ([]clientdomain.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(*clientdomain.Client) error             { return nil }
func (r *fakeClientRepo) Delete(uint) error                             { return nil }

func (r *fakeClientRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.clients[id]
	return ok, nil
}

func newAnimalRouter() (*mux.Router, *fakeAnimalRepo, *fakeClientRepo) {
	animals := newFakeAnimalRepo()
	clients := &fakeClientRepo{clients: make(map[uint]clientdomain.Client)}

	router := mux.NewRouter()
	NewAnimalHandler(animals, clients).RegisterRoutes(router)
	return router, animals, clients
}

func postJSON(router *mux.Router, target string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAnimal(t *testing.T) {
	router, repo, clients := newAnimalRouter()
	clients.clients[7] = clientdomain.Client{ID: 7}

	rec := postJSON(router, "/animals", map[string]interface{}{
		"name":      "Rex",
		"species":   "dog",
		"breed":     "labrador",
		"birthDate": "2020-04-01",
		"ownerId":   7,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Animal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Rex", created.Name)
	require.Equal(t, uint(7), created.OwnerID)
	require.Equal(t, 2020, created.BirthDate.Year())
	require.Len(t, repo.animals, 1)
}

func TestCreateAnimal_MissingOwner(t *testing.T) {
	router, repo, _ := newAnimalRouter()

	rec := postJSON(router, "/animals", map[string]interface{}{
		"name":    "Rex",
		"species": "dog",
		"ownerId": 7,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httperr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "You have to create the client before adding its animal!", body.Message)
	require.Empty(t, repo.animals)
}

func TestCreateAnimal_InvalidBirthDate(t *testing.T) {
	router, _, clients := newAnimalRouter()
	clients.clients[1] = clientdomain.Client{ID: 1}

	rec := postJSON(router, "/animals", map[string]interface{}{
		"species":   "cat",
		"ownerId":   1,
		"birthDate": "01/04/2020",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAnimals_FilterByOwner(t *testing.T) {
	router, repo, clients := newAnimalRouter()
	clients.clients[1] = clientdomain.Client{ID: 1}
	clients.clients[2] = clientdomain.Client{ID: 2}

	repo.animals[1] = domain.Animal{ID: 1, Species: "dog", OwnerID: 1}
	repo.animals[2] = domain.Animal{ID: 2, Species: "cat", OwnerID: 2}
	repo.animals[3] = domain.Animal{ID: 3, Species: "parrot", OwnerID: 1}

	req := httptest.NewRequest(http.MethodGet, "/animals?clientId=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var animals []domain.Animal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &animals))
	require.Len(t, animals, 2)
	for _, a := range animals {
		require.Equal(t, uint(1), a.OwnerID)
	}
}

func TestGetAnimal_NotFound(t *testing.T) {
	router, _, _ := newAnimalRouter()

	req := httptest.NewRequest(http.MethodGet, "/animals/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httperr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "The animal with id = 5 does not exist in the database.", body.Message)
}

func TestDeleteAnimal(t *testing.T) {
	router, repo, _ := newAnimalRouter()
	repo.animals[3] = domain.Animal{ID: 3, Species: "dog", OwnerID: 1}

	req := httptest.NewRequest(http.MethodDelete, "/animals/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, repo.animals)
}
