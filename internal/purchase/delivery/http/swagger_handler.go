package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreatePurchase godoc
// @Summary Confirm a purchase
// @Description Validate stock line by line, price the order and persist it atomically
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body object{clientId=int,lineItems=[]object{inventoryId=int,orderedQuantity=int}} true "Purchase request"
// @Success 201 {object} object{id=int,reference=string,clientId=int,price=number,time=string,lineItems=[]object{id=int,inventoryId=int,orderedQuantity=int}}
// @Failure 400 {object} object{code=int,message=string}
// @Failure 404 {object} object{code=int,message=string}
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchaseDoc() {}

// ListPurchases godoc
// @Summary List purchases
// @Description List all purchases, optionally filtered by client
// @Tags Purchases
// @Produce json
// @Param clientId query int false "Filter by client id"
// @Success 200 {array} object{id=int,reference=string,clientId=int,price=number,time=string}
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchasesDoc() {}

// GetPurchase godoc
// @Summary Get a purchase
// @Description Fetch one purchase with its line items
// @Tags Purchases
// @Produce json
// @Param id path int true "Purchase id"
// @Success 200 {object} object{id=int,reference=string,clientId=int,price=number,time=string}
// @Failure 404 {object} object{code=int,message=string}
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchaseDoc() {}

// CancelPurchase godoc
// @Summary Cancel a purchase
// @Description Restore the ordered stock and delete the purchase with its line items
// @Tags Purchases
// @Param id path int true "Purchase id"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} object{code=int,message=string}
// @Router /purchases/{id} [delete]
func (h *PurchaseHandler) CancelPurchaseDoc() {}
