package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type VehicleHandler struct {
	Service *services.VehicleService
}

func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.Get(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load garage")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *VehicleHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var car models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if car.BrandName == "" || car.ModelName == "" {
		writeError(w, http.StatusBadRequest, "brand and model are required")
		return
	}

	cars, err := h.Service.Add(r.Context(), userID(r), car)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save vehicle")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *VehicleHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	cars, err := h.Service.Remove(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove vehicle")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *VehicleHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	cars, err := h.Service.SetPrimary(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, models.ErrVehicleNotFound) {
			writeError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update vehicle")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}
