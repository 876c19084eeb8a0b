package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteDeadline = 5 * time.Second
	wsReadDeadline  = 120 * time.Second
	wsPingInterval  = 15 * time.Second
	wsReadLimit     = 1 << 20 // 1 MB
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveWS upgrades the request and streams state-change events for the
// authenticated user until the client goes away.
func (app *application) serveWS(w http.ResponseWriter, r *http.Request) {
	id, ok := r.Context().Value("user_id").(int)
	if !ok || id == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("ws upgrade for user %d: %v", id, err)
		return
	}

	events, cancel := app.bus.Subscribe(id)
	defer cancel()
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	// Reader only consumes control frames; a read error means the peer left.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, open := <-events:
			if !open {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := conn.WriteJSON(ev); err != nil {
				app.infoLog.Printf("ws write user=%d: %v", id, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
