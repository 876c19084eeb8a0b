package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone is required")
		return
	}

	if err := h.Service.RequestCode(r.Context(), body.Phone); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send code")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Phone == "" || req.Password == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "phone, password and code are required")
		return
	}

	profile, tokens, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCodeExpired):
			writeError(w, http.StatusBadRequest, "verification code expired")
		case errors.Is(err, models.ErrCodeMismatch):
			writeError(w, http.StatusBadRequest, "wrong verification code")
		case errors.Is(err, models.ErrDuplicatePhone):
			writeError(w, http.StatusConflict, "phone already registered")
		default:
			writeError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":   profile,
		"tokens": tokens,
	})
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	profile, tokens, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "wrong phone or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":   profile,
		"tokens": tokens,
	})
}

func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.SignOut(r.Context(), userID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.Profile
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), userID(r), update)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// AddPoints is the admin loyalty credit endpoint.
func (h *UserHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID int `json:"user_id"`
		Points int `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == 0 || body.Points <= 0 {
		writeError(w, http.StatusBadRequest, "user_id and a positive points value are required")
		return
	}

	profile, err := h.Service.AddPoints(r.Context(), body.UserID, body.Points)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add points")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
