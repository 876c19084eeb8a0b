package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type TireHandler struct {
	Service *services.TireService
}

func (h *TireHandler) GetTires(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TireFilter{
		Width:    q.Get("width"),
		Height:   q.Get("height"),
		Diameter: q.Get("diameter"),
		Season:   q.Get("season"),
		Brand:    q.Get("brand"),
		Spike:    q.Get("spike"),
		Runflat:  q.Get("runflat"),
		Cargo:    q.Get("cargo"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	tires, err := h.Service.GetTires(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, tires)
}

func (h *TireHandler) GetTireByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	tire, err := h.Service.GetTireByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTireNotFound) {
			writeError(w, http.StatusNotFound, "tire not found")
			return
		}
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, tire)
}

// GetTireByArticle handles GET /api/tire-by-article?article=...
func (h *TireHandler) GetTireByArticle(w http.ResponseWriter, r *http.Request) {
	article := r.URL.Query().Get("article")
	if article == "" {
		writeError(w, http.StatusBadRequest, "article is required")
		return
	}
	tire, err := h.Service.GetTireByArticle(r.Context(), article)
	if err != nil {
		if errors.Is(err, models.ErrTireNotFound) {
			writeError(w, http.StatusNotFound, "tire not found")
			return
		}
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, tire)
}

func (h *TireHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Service.GetBrands(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *TireHandler) GetDimensions(w http.ResponseWriter, r *http.Request) {
	dims, err := h.Service.GetDimensions(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, dims)
}

func (h *TireHandler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.Service.GetSeasonValues(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "tire catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}
