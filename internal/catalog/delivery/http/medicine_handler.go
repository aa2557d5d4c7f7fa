package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// MedicineHandler handles HTTP requests for medicine products
type MedicineHandler struct {
	repo domain.MedicineRepository
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(repo domain.MedicineRepository) *MedicineHandler {
	return &MedicineHandler{repo: repo}
}

type medicineRequest struct {
	Animal    string            `json:"animal"`
	Price     float64           `json:"price"`
	Purpose   string            `json:"purpose"`
	Inventory *inventoryPayload `json:"inventory"`
}

func (req medicineRequest) validate() error {
	if req.Purpose == "" {
		return httperr.BadRequest("purpose is required")
	}
	if req.Price < 0 {
		return httperr.BadRequest("price cannot be negative")
	}
	return nil
}

// CreateMedicine handles POST /medicines
func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
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

	medicine := &domain.Medicine{
		Animal:  req.Animal,
		Price:   req.Price,
		Purpose: req.Purpose,
	}

	if err := h.repo.Create(medicine, initialQuantity); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create medicine")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, medicine)
}

// GetMedicine handles GET /medicines/{id}
func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	medicine, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, medicine)
}

// ListMedicines handles GET /medicines
func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	medicines, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list medicines")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, medicines)
}

// UpdateMedicine handles PUT /medicines/{id}
func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req medicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		httperr.Write(w, err)
		return
	}

	medicine := &domain.Medicine{
		ID:      id,
		Animal:  req.Animal,
		Price:   req.Price,
		Purpose: req.Purpose,
	}

	if err := h.repo.Update(medicine); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, medicine)
}

// DeleteMedicine handles DELETE /medicines/{id}
func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
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

// RegisterRoutes registers all medicine routes
func (h *MedicineHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/medicines", h.ListMedicines).Methods("GET")
	router.HandleFunc("/medicines", h.CreateMedicine).Methods("POST")
	router.HandleFunc("/medicines/{id}", h.GetMedicine).Methods("GET")
	router.HandleFunc("/medicines/{id}", h.UpdateMedicine).Methods("PUT")
	router.HandleFunc("/medicines/{id}", h.DeleteMedicine).Methods("DELETE")
}
