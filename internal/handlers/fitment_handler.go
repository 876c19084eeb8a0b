package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type FitmentHandler struct {
	Service *services.FitmentService
}

// Fitment data changes rarely; the hint is advisory, nothing is cached here.
const fitmentCacheControl = "public, max-age=86400"

func (h *FitmentHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Service.GetBrands(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "vehicle catalog is unavailable")
		return
	}
	w.Header().Set("Cache-Control", fitmentCacheControl)
	writeJSON(w, http.StatusOK, map[string]interface{}{"brands": brands})
}

// GetModels handles GET /api/fitment/models?brand_slug=...
func (h *FitmentHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand_slug")
	if brand == "" {
		writeError(w, http.StatusBadRequest, "brand_slug is required")
		return
	}

	result, err := h.Service.GetModels(r.Context(), brand)
	if err != nil {
		writeError(w, http.StatusBadGateway, "vehicle catalog is unavailable")
		return
	}
	w.Header().Set("Cache-Control", fitmentCacheControl)
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": result})
}

// GetFitment handles GET /api/fitment?brand_slug&model_slug&year
func (h *FitmentHandler) GetFitment(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand_slug")
	model := r.URL.Query().Get("model_slug")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if brand == "" || model == "" {
		writeError(w, http.StatusBadRequest, "brand_slug and model_slug are required")
		return
	}

	record, err := h.Service.GetFitment(r.Context(), brand, model, year)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			writeError(w, http.StatusNotFound, "no fitment record for this vehicle")
			return
		}
		writeError(w, http.StatusBadGateway, "vehicle catalog is unavailable")
		return
	}
	w.Header().Set("Cache-Control", fitmentCacheControl)
	writeJSON(w, http.StatusOK, record)
}
