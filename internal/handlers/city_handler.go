package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type CityHandler struct {
	Service *services.CityService
}

func (h *CityHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Service.GetCities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch cities")
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

func (h *CityHandler) GetCityByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get(":id"))
	city, err := h.Service.GetCityByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			writeError(w, http.StatusNotFound, "city not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch city")
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func (h *CityHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	city, err := h.Service.GetSelected(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load selected city")
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func (h *CityHandler) SetSelected(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CityID int `json:"city_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CityID == 0 {
		writeError(w, http.StatusBadRequest, "city_id is required")
		return
	}

	city, err := h.Service.SetSelected(r.Context(), userID(r), body.CityID)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			writeError(w, http.StatusNotFound, "city not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save selected city")
		return
	}
	writeJSON(w, http.StatusOK, city)
}
