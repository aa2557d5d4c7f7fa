package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// FoodHandler handles HTTP requests for food products
type FoodHandler struct {
	repo domain.FoodRepository
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(repo domain.FoodRepository) *FoodHandler {
	return &FoodHandler{repo: repo}
}

type foodRequest struct {
	Brand           string            `json:"brand"`
	Type            string            `json:"type"`
	Price           float64           `json:"price"`
	QuantityPerUnit int64             `json:"quantityPerUnit"`
	Animal          string            `json:"animal"`
	Inventory       *inventoryPayload `json:"inventory"`
}

func (req foodRequest) validate() error {
	if req.Brand == "" {
		return httperr.BadRequest("brand is required")
	}
	if req.Price < 0 {
		return httperr.BadRequest("price cannot be negative")
	}
	return nil
}

// CreateFood handles POST /foods
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
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

	food := &domain.Food{
		Brand:           req.Brand,
		Type:            req.Type,
		Price:           req.Price,
		QuantityPerUnit: req.QuantityPerUnit,
		Animal:          req.Animal,
	}

	if err := h.repo.Create(food, initialQuantity); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create food")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, food)
}

// GetFood handles GET /foods/{id}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	food, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// ListFoods handles GET /foods
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	foods, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list foods")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, foods)
}

// UpdateFood handles PUT /foods/{id}
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		httperr.Write(w, err)
		return
	}

	food := &domain.Food{
		ID:              id,
		Brand:           req.Brand,
		Type:            req.Type,
		Price:           req.Price,
		QuantityPerUnit: req.QuantityPerUnit,
		Animal:          req.Animal,
	}

	if err := h.repo.Update(food); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// DeleteFood handles DELETE /foods/{id}
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
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

// RegisterRoutes registers all food routes
func (h *FoodHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/foods", h.ListFoods).Methods("GET")
	router.HandleFunc("/foods", h.CreateFood).Methods("POST")
	router.HandleFunc("/foods/{id}", h.GetFood).Methods("GET")
	router.HandleFunc("/foods/{id}", h.UpdateFood).Methods("PUT")
	router.HandleFunc("/foods/{id}", h.DeleteFood).Methods("DELETE")
}
