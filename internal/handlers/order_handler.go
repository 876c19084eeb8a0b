package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

func (h *OrderHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.GetDraft(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order details")
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *OrderHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var details models.OrderDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.Service.SaveDraft(r.Context(), userID(r), details); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save order details")
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Checkout(r.Context(), userID(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "cart is empty")
		case errors.Is(err, models.ErrInsufficientPoints):
			writeError(w, http.StatusBadRequest, "not enough points")
		default:
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.GetByUser(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	order, err := h.Service.GetByID(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
