package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type WheelHandler struct {
	Service *services.WheelService
}

func (h *WheelHandler) GetWheels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.WheelFilter{
		Diameter: q.Get("diameter"),
		Width:    q.Get("width"),
		PCD:      q.Get("pcd"),
		ET:       q.Get("et"),
		Hub:      q.Get("hub"),
		Type:     q.Get("type"),
		Brand:    q.Get("brand"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	wheels, err := h.Service.GetWheels(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusBadGateway, "wheel catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": wheels})
}

func (h *WheelHandler) GetWheelByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	wheel, err := h.Service.GetWheelByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrWheelNotFound) {
			writeError(w, http.StatusNotFound, "wheel not found")
			return
		}
		writeError(w, http.StatusBadGateway, "wheel catalog is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, wheel)
}
