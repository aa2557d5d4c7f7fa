package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/internal/inventory/usecase/query"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// InventoryHandler handles HTTP requests for inventory records
type InventoryHandler struct {
	repo     domain.InventoryRepository
	resolver *query.ResolveProductHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.InventoryRepository, resolver *query.ResolveProductHandler) *InventoryHandler {
	return &InventoryHandler{repo: repo, resolver: resolver}
}

// CreateInventory handles POST /inventories
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AvailableQuantity int64 `json:"availableQuantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	if req.AvailableQuantity < 0 {
		httperr.Write(w, httperr.BadRequest("availableQuantity cannot be negative"))
		return
	}

	inventory := &domain.Inventory{AvailableQuantity: req.AvailableQuantity}
	if err := h.repo.Create(inventory); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create inventory")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, inventory)
}

// GetInventory handles GET /inventories/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	inventory, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

// ListInventories handles GET /inventories
func (h *InventoryHandler) ListInventories(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit == 0 {
		limit = 50
	}

	inventories, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list inventories")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventories)
}

// UpdateInventory handles PUT /inventories/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req struct {
		AvailableQuantity int64 `json:"availableQuantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}
	if req.AvailableQuantity < 0 {
		httperr.Write(w, httperr.BadRequest("availableQuantity cannot be negative"))
		return
	}

	inventory, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	inventory.AvailableQuantity = req.AvailableQuantity
	saved, err := h.repo.Save(inventory)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update inventory")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, saved)
}

// DeleteInventory handles DELETE /inventories/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
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

// GetProductForInventory handles GET /inventories/{id}/product
func (h *InventoryHandler) GetProductForInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	ref, err := h.resolver.Handle(query.ResolveProductQuery{InventoryID: id})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ref)
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventories", h.ListInventories).Methods("GET")
	router.HandleFunc("/inventories", h.CreateInventory).Methods("POST")
	router.HandleFunc("/inventories/{id}", h.GetInventory).Methods("GET")
	router.HandleFunc("/inventories/{id}", h.UpdateInventory).Methods("PUT")
	router.HandleFunc("/inventories/{id}", h.DeleteInventory).Methods("DELETE")
	router.HandleFunc("/inventories/{id}/product", h.GetProductForInventory).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			httperr.Write(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "petshop service is healthy"})
	}).Methods("GET")
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, httperr.BadRequest("invalid id in path")
	}
	return uint(id), nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
