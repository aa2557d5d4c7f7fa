package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/internal/purchase/usecase/command"
	"github.com/tair/petshop-backend/internal/purchase/usecase/query"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// PurchaseHandler handles HTTP requests for purchases using CQRS pattern
type PurchaseHandler struct {
	createHandler *command.CreatePurchaseHandler
	cancelHandler *command.CancelPurchaseHandler

	getHandler  *query.GetPurchaseHandler
	listHandler *query.ListPurchasesHandler

	repo domain.PurchaseRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalPurchases prometheus.Gauge
}

// NewPurchaseHandler creates a new purchase handler using dependency injection
func NewPurchaseHandler(
	createHandler *command.CreatePurchaseHandler,
	cancelHandler *command.CancelPurchaseHandler,
	getHandler *query.GetPurchaseHandler,
	listHandler *query.ListPurchasesHandler,
	repo domain.PurchaseRepository,
) *PurchaseHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petshop_purchase_requests_total",
			Help: "Total number of requests to the purchase endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petshop_purchase_request_duration_seconds",
			Help:    "Duration of purchase endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "petshop_purchase_request_duration_summary",
			Help: "Summary of purchase request durations with client-side quantiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalPurchases := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "petshop_purchases_total",
			Help: "Number of purchases currently in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalPurchases)

	return &PurchaseHandler{
		createHandler:  createHandler,
		cancelHandler:  cancelHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalPurchases: totalPurchases,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PurchaseHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *PurchaseHandler) updatePurchasesMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalPurchases.Set(float64(count))
	}
}

// RegisterRoutes registers all purchase routes
func (h *PurchaseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/purchases", h.metricsMiddleware("/purchases", h.ListPurchases)).Methods("GET")
	router.HandleFunc("/purchases", h.metricsMiddleware("/purchases", h.CreatePurchase)).Methods("POST")
	router.HandleFunc("/purchases/{id}", h.metricsMiddleware("/purchases/{id}", h.GetPurchase)).Methods("GET")
	router.HandleFunc("/purchases/{id}", h.metricsMiddleware("/purchases/{id}", h.CancelPurchase)).Methods("DELETE")
}

type purchaseLineRequest struct {
	InventoryID     uint  `json:"inventoryId"`
	OrderedQuantity int64 `json:"orderedQuantity"`
}

type purchaseRequest struct {
	ClientID uint                  `json:"clientId"`
	Items    []purchaseLineRequest `json:"lineItems"`
}

// CreatePurchase handles POST /purchases
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("invalid request body"))
		return
	}

	cmd := command.CreatePurchaseCommand{ClientID: req.ClientID}
	for _, line := range req.Items {
		cmd.Lines = append(cmd.Lines, command.PurchaseLine{
			InventoryID:     line.InventoryID,
			OrderedQuantity: line.OrderedQuantity,
		})
	}

	purchase, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("client_id", req.ClientID).Msg("Failed to create purchase")
		httperr.Write(w, err)
		return
	}

	h.updatePurchasesMetric()

	respondJSON(w, http.StatusCreated, purchase)
}

// GetPurchase handles GET /purchases/{id}
func (h *PurchaseHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	purchase, err := h.getHandler.Handle(query.GetPurchaseQuery{PurchaseID: id})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// ListPurchases handles GET /purchases with an optional clientId filter
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	q := query.ListPurchasesQuery{Limit: limit, Offset: offset}
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.Write(w, httperr.BadRequest("clientId must be a positive integer"))
			return
		}
		id := uint(clientID)
		q.ClientID = &id
	}

	purchases, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list purchases")
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}

// CancelPurchase handles DELETE /purchases/{id}
func (h *PurchaseHandler) CancelPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.cancelHandler.Handle(r.Context(), command.CancelPurchaseCommand{PurchaseID: id}); err != nil {
		logger.Logger.Error().Err(err).Uint("purchase_id", id).Msg("Failed to cancel purchase")
		httperr.Write(w, err)
		return
	}

	h.updatePurchasesMetric()

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, httperr.BadRequest("id must be a positive integer")
	}
	return uint(id), nil
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
