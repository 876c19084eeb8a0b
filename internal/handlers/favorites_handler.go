package handlers

import (
	"encoding/json"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type FavoritesHandler struct {
	Service *services.FavoritesService
}

func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Get(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load favorites")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var item models.FavoriteItem
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
		writeError(w, http.StatusInternalServerError, "failed to update favorites")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get(":productId")
	items, err := h.Service.Remove(r.Context(), userID(r), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update favorites")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var item models.FavoriteItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if item.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	favorited, items, err := h.Service.Toggle(r.Context(), userID(r), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update favorites")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorited": favorited,
		"items":     items,
	})
}
