package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"firebase.google.com/go/messaging"
)

// PushHandler manages device tokens and delivers FCM notifications. It also
// backs the appointment notifier.
type PushHandler struct {
	Client *messaging.Client
	DB     *sql.DB
}

func NewPushHandler(client *messaging.Client, db *sql.DB) *PushHandler {
	return &PushHandler{Client: client, DB: db}
}

func (h *PushHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	stmt := `INSERT INTO notify_tokens (user_id, token) VALUES (?, ?)
	         ON DUPLICATE KEY UPDATE user_id = VALUES(user_id)`
	if _, err := h.DB.ExecContext(r.Context(), stmt, userID(r), body.Token); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save token")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *PushHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(":token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	if _, err := h.DB.ExecContext(r.Context(), `DELETE FROM notify_tokens WHERE token = ?`, token); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notify sends a push message to every device registered by the user.
// Delivery failures for individual tokens are logged and skipped.
func (h *PushHandler) Notify(ctx context.Context, userID int, title, body string) error {
	tokens, err := h.tokensByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{"apns-priority": "10"},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{Title: title, Body: body},
						Sound: "default",
					},
				},
			},
		}
		if _, err := h.Client.Send(ctx, message); err != nil {
			log.Printf("push to token %s failed: %v", token, err)
		}
	}
	return nil
}

func (h *PushHandler) tokensByUser(ctx context.Context, userID int) ([]string, error) {
	rows, err := h.DB.QueryContext(ctx, `SELECT token FROM notify_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
