package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type CartHandler struct {
	Service *services.CartService
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Get(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if item.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	items, err := h.Service.Add(r.Context(), userID(r), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := r.URL.Query().Get(":id")
	items, err := h.Service.Remove(r.Context(), userID(r), lineID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	lineID := r.URL.Query().Get(":id")
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	items, err := h.Service.SetQuantity(r.Context(), userID(r), lineID, body.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "cart item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(r.Context(), userID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
