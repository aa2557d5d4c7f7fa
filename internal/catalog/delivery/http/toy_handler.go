package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// ToyHandler handles HTTP requests for toy products
type ToyHandler struct {
	repo domain.ToyRepository
}

// NewToyHandler creates a new toy handler
func NewToyHandler(repo domain.ToyRepository) *ToyHandler {
	return &ToyHandler{repo: repo}
}

type toyRequest struct {
	Animal    string            `json:"animal"`
	Price     float64           `json:"price"`
	Brand     string            `json:"brand"`
	Inventory *inventoryPayload `json:"inventory"`
}

func (req toyRequest) validate() error {
	if req.Brand == "" {
		return httperr.BadRequest("brand is required")
	}
	if req.Price < 0 {
		return httperr.BadRequest("price cannot be negative")
	}
	return nil
}

// CreateToy handles POST /toys
func (h *ToyHandler) CreateToy(w http.ResponseWriter, r *http.Request) {
	var req toyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		httperr.Write(w, err)
		return
	}

	var initialQuantity int64
	if req.Inventory != nil {
		if req.Inventory.AvailableQuantity < 0 {
			httperr.Write(w, httperr.BadRequest("availableQuantity cannot be negative"))
			return
		}
		initialQuantity = req.Inventory.AvailableQuantity
	}

	toy := &domain.Toy{
		Animal: req.Animal,
		Price:  req.Price,
		Brand:  req.Brand,
	}

	if err := h.repo.Create(toy, initialQuantity); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create toy")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toy)
}

// GetToy handles GET /toys/{id}
func (h *ToyHandler) GetToy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	toy, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toy)
}

// ListToys handles GET /toys
func (h *ToyHandler) ListToys(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	toys, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list toys")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toys)
}

// UpdateToy handles PUT /toys/{id}
func (h *ToyHandler) UpdateToy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req toyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		httperr.Write(w, err)
		return
	}

	toy := &domain.Toy{
		ID:     id,
		Animal: req.Animal,
		Price:  req.Price,
		Brand:  req.Brand,
	}

	if err := h.repo.Update(toy); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toy)
}

// DeleteToy handles DELETE /toys/{id}
func (h *ToyHandler) DeleteToy(w http.ResponseWriter, r *http.Request) {
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

// RegisterRoutes registers all toy routes
func (h *ToyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/toys", h.ListToys).Methods("GET")
	router.HandleFunc("/toys", h.CreateToy).Methods("POST")
	router.HandleFunc("/toys/{id}", h.GetToy).Methods("GET")
	router.HandleFunc("/toys/{id}", h.UpdateToy).Methods("PUT")
	router.HandleFunc("/toys/{id}", h.DeleteToy).Methods("DELETE")
}
