package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type AppointmentHandler struct {
	Service *services.AppointmentService
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var a models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	a.UserID = userID(r)

	created, err := h.Service.Book(r.Context(), a)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.Service.GetByUser(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.Cancel(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "appointment not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Confirm is the admin endpoint that approves a booking.
func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	a, err := h.Service.Confirm(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "appointment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to confirm appointment")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
