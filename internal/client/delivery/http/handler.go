package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/petshop-backend/internal/client/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	repo domain.ClientRepository
}

// NewClientHandler creates a new client handler
func NewClientHandler(repo domain.ClientRepository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

type clientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	City      string `json:"city"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
}

func (req clientRequest) toEntity() (*domain.Client, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, httperr.BadRequest("first name and last name are required")
	}
	if req.Email == "" {
		return nil, httperr.BadRequest("email is required")
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			return nil, httperr.BadRequest("birthDate must use the YYYY-MM-DD format")
		}
		birthDate = parsed
	}

	return &domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		City:      req.City,
		BirthDate: birthDate,
	}, nil
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	client, err := req.toEntity()
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.repo.Create(client); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create client")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, client)
}

// GetClient handles GET /clients/{id}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	client, err := h.repo.FindByID(id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	clients, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list clients")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

// UpdateClient handles PUT /clients/{id}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	client, err := req.toEntity()
	if err != nil {
		httperr.Write(w, err)
		return
	}
	client.ID = id

	if err := h.repo.Update(client); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/{id}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
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

// RegisterRoutes registers all client routes
func (h *ClientHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/clients", h.ListClients).Methods("GET")
	router.HandleFunc("/clients", h.CreateClient).Methods("POST")
	router.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	router.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	router.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")
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

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
