package handlers

import (
	"net/http"

	"shinaBack/internal/services"
)

type SearchHandler struct {
	Service *services.SearchService
}

// Search handles GET /api/fitment/search?q=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.Service.Search(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusBadGateway, "vehicle catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
