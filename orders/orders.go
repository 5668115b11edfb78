// Package orders implements order placement (public) and the admin order
// management handlers.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sharee/cart"
	"sharee/checkout"
	"sharee/models"
	"sharee/mq"
	"sharee/pricing"
	"sharee/shipping"
	"sharee/store"
	"sharee/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Orders   store.OrderStore
	Products store.ProductStore
	Rates    shipping.RateTable
	Emitter  *mq.Emitter
}

type placeOrderRequest struct {
	checkout.Contact
	Shipping string `json:"shipping"`
	Products []struct {
		ProductID string      `json:"productId"`
		Quantity  json.Number `json:"quantity"`
	} `json:"products"`
}

// Place accepts a customer order. The selection is rebuilt server-side
// against the live catalog, so snapshot prices always come from the
// database rather than from whatever the client posted.
func (h *Handler) Place(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	zone, err := shipping.ParseZone(req.Shipping)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid shipping zone")
		return
	}

	catalog, err := h.catalogByID(ctx)
	if err != nil {
		log.Println("orders: catalog load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order.")
		return
	}
	lookup := pricing.ProductLookup(func(id string) (models.Product, bool) {
		p, ok := catalog[id]
		return p, ok
	})

	sel := cart.NewSelection()
	seen := make(map[string]bool, len(req.Products))
	for _, item := range req.Products {
		p, ok := catalog[item.ProductID]
		if !ok || seen[p.ProductID] {
			continue
		}
		seen[p.ProductID] = true
		sel.Toggle(p)
		sel.SetQuantity(p.ProductID, item.Quantity.String())
	}

	builder := checkout.Builder{Orders: h.Orders, Rates: h.Rates}
	order, err := builder.Submit(ctx, sel, lookup, zone, req.Contact)

	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(w, http.StatusBadRequest, vErr.Error())
		return
	case err != nil:
		log.Println("orders: submit error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order.")
		return
	}

	h.Emitter.Emit(ctx, "order-placed", order.OrderID)
	utils.SendResponse(w, http.StatusOK, order, "Order placed successfully!", nil)
}

// List returns all orders newest first (admin).
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Orders.List(ctx)
	if err != nil {
		log.Println("orders: list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// UpdateStatus sets an order's status (admin). Any valid status can
// replace any other.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	status, err := models.ToOrderStatus(body.Status)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Orders.UpdateStatus(ctx, ps.ByName("id"), status)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("orders: status update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	h.Emitter.Emit(ctx, "order-status-changed", order.OrderID)
	utils.SendResponse(w, http.StatusOK, order, "Order updated", nil)
}

// Delete removes an order permanently (admin).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := h.Orders.Delete(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("orders: delete error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Order deleted successfully", nil)
}

func (h *Handler) catalogByID(ctx context.Context) (map[string]models.Product, error) {
	products, err := h.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ProductID] = p
	}
	return catalog, nil
}
