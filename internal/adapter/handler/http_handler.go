package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/core/service"
	"github.com/rl1809/nozama/internal/port"
)

type HTTPHandler struct {
	warehouse *service.Warehouse
	nozama    *service.Nozama
	carts     port.CartStore
	logger    *zap.Logger
}

type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type CartItemRequest struct {
	ItemID   int  `json:"item_id"`
	Quantity *int `json:"quantity"`
}

type APIResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	OrderID string              `json:"order_id,omitempty"`
	Errors  []domain.OrderError `json:"errors,omitempty"`
}

func NewHTTPHandler(warehouse *service.Warehouse, nozama *service.Nozama, carts port.CartStore, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		warehouse: warehouse,
		nozama:    nozama,
		carts:     carts,
		logger:    logger,
	}
}

func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)

	r.Route("/api/warehouse/items", func(r chi.Router) {
		r.Get("/", h.ListStock)
		r.Get("/{itemID}", h.GetStock)
		r.Post("/{itemID}/add", h.AddStock)
		r.Post("/{itemID}/remove", h.RemoveStock)
	})

	r.Route("/api/carts/{shopperID}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.EmptyCart)
		r.Post("/items", h.AddCartItem)
		r.Put("/items/{itemID}", h.UpdateCartItem)
		r.Delete("/items/{itemID}", h.RemoveCartItem)
		r.Post("/checkout", h.Checkout)
	})

	return r
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	levels, err := h.warehouse.Levels(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if levels == nil {
		levels = []domain.StockLevel{}
	}
	writeJSON(w, http.StatusOK, levels)
}

func (h *HTTPHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	qty, found, err := h.warehouse.Stock(r.Context(), itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !found {
		h.writeError(w, domain.UnknownItem(itemID, 0))
		return
	}
	writeJSON(w, http.StatusOK, domain.StockLevel{ItemID: itemID, Quantity: qty})
}

func (h *HTTPHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.warehouse.Add, "stock added")
}

func (h *HTTPHandler) RemoveStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.warehouse.Remove, "stock removed")
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartParam(w, r)
	if !ok {
		return
	}

	items, err := cart.Items(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) EmptyCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartParam(w, r)
	if !ok {
		return
	}

	if err := cart.Empty(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "cart emptied"})
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartParam(w, r)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: "invalid request body"})
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := cart.Add(r.Context(), req.ItemID, quantity); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "item added"})
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartParam(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}
	quantity, ok := decodeQuantity(w, r)
	if !ok {
		return
	}

	if err := cart.UpdateQuantity(r.Context(), itemID, quantity); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "item updated"})
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartParam(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	if err := cart.Remove(r.Context(), itemID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "item removed"})
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	shopperID, err := uuid.Parse(chi.URLParam(r, "shopperID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: "invalid shopper id"})
		return
	}

	record, err := h.nozama.Checkout(r.Context(), service.Session{
		ShopperID: shopperID,
		Cart:      h.carts.Cart(shopperID),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "order placed successfully",
		OrderID: record.ID,
	})
}

func (h *HTTPHandler) adjustStock(w http.ResponseWriter, r *http.Request, adjust func(ctx context.Context, itemID, quantity int) error, message string) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}
	quantity, ok := decodeQuantity(w, r)
	if !ok {
		return
	}

	if err := adjust(r.Context(), itemID, quantity); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: message})
}

func (h *HTTPHandler) cartParam(w http.ResponseWriter, r *http.Request) (port.ShoppingCart, bool) {
	shopperID, err := uuid.Parse(chi.URLParam(r, "shopperID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: "invalid shopper id"})
		return nil, false
	}
	return h.carts.Cart(shopperID), true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var failed *domain.OrderFailedError
	if errors.As(err, &failed) {
		writeJSON(w, http.StatusConflict, APIResponse{
			Message: domain.ErrOrderFailed.Error(),
			Errors:  failed.Errors,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrUnknownItem):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		status = http.StatusConflict
		message = err.Error()
	default:
		h.logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, APIResponse{Message: message})
}

func itemIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: "invalid item id"})
		return 0, false
	}
	return itemID, true
}

func decodeQuantity(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: "missing quantity"})
		return 0, false
	}
	return *req.Quantity, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
