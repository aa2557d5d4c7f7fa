package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/animal/domain"
	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// AnimalHandler handles HTTP requests for animals
type AnimalHandler struct {
	repo    domain.AnimalRepository
	clients clientdomain.ClientRepository
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(repo domain.AnimalRepository, clients clientdomain.ClientRepository) *AnimalHandler {
	return &AnimalHandler{repo: repo, clients: clients}
}

type animalRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	OwnerID   uint   `json:"ownerId"`
}

func (req animalRequest) toEntity() (*domain.Animal, error) {
	if req.Species == "" {
		return nil, httperr.BadRequest("species is required")
	}
	if req.OwnerID == 0 {
		return nil, httperr.BadRequest("ownerId is required")
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			return nil, httperr.BadRequest("birthDate must use the YYYY-MM-DD format")
		}
		birthDate = parsed
	}

	return &domain.Animal{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		BirthDate: birthDate,
		OwnerID:   req.OwnerID,
	}, nil
}

// CreateAnimal handles POST /animals
func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req animalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	animal, err := req.toEntity()
	if err != nil {
		httperr.Write(w, err)
		return
	}

	// The owner must exist before its animal can be registered
	exists, err := h.clients.ExistsByID(animal.OwnerID)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to check animal owner")
		httperr.Write(w, err)
		return
	}
	if !exists {
		httperr.Write(w, httperr.BadRequest("You have to create the client before adding its animal!"))
		return
	}

	if err := h.repo.Create(animal); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create animal")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, animal)
}

// GetAnimal handles GET /animals/{id}
func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	animal, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, animal)
}

// ListAnimals handles GET /animals and GET /animals?clientId=
func (h *AnimalHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		ownerID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.Write(w, httperr.BadRequest("invalid clientId query parameter"))
			return
		}

		animals, err := h.repo.FindByOwnerID(uint(ownerID))
		if err != nil {
			httperr.Write(w, err)
			return
		}
		respondJSON(w, http.StatusOK, animals)
		return
	}

	limit, offset := pagination(r)
	animals, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list animals")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, animals)
}

// UpdateAnimal handles PUT /animals/{id}
func (h *AnimalHandler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req animalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	animal, err := req.toEntity()
	if err != nil {
		httperr.Write(w, err)
		return
	}
	animal.ID = id

	if err := h.repo.Update(animal); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, animal)
}

// DeleteAnimal handles DELETE /animals/{id}
func (h *AnimalHandler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all animal routes
func (h *AnimalHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/animals", h.ListAnimals).Methods("GET")
	router.HandleFunc("/animals", h.CreateAnimal).Methods("POST")
	router.HandleFunc("/animals/{id}", h.GetAnimal).Methods("GET")
	router.HandleFunc("/animals/{id}", h.UpdateAnimal).Methods("PUT")
	router.HandleFunc("/animals/{id}", h.DeleteAnimal).Methods("DELETE")
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, httperr.BadRequest("invalid id in path")
	}
	return uint(id), nil
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if limit == 0 {
		limit = 50
	}
	return limit, offset
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
