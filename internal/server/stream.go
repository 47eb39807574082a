package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/verte-zerg/typemaster/internal/logger"
)

const writeWait = 5 * time.Second

// Stream handles GET /v1/session/stream. It pushes the current snapshot on
// connect and the latest one after every change until either side closes.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", logger.Err(err))
		return
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			// Best-effort connection close.
			_ = cerr
		}
	}()

	updates, unsubscribe := h.engine.Subscribe()
	defer unsubscribe()

	// Clients only send control frames; reading keeps them flowing and
	// reports disconnects.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.log.Debug("stream client error", logger.Err(err))
				}
				return
			}
		}
	}()

	h.log.Debug("stream opened", logger.F("remote", r.RemoteAddr))
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "engine stopped")
				if werr := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); werr != nil {
					// Best-effort close frame.
					_ = werr
				}
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				h.log.Debug("stream write failed", logger.Err(err))
				return
			}
		case <-gone:
			h.log.Debug("stream closed", logger.F("remote", r.RemoteAddr))
			return
		}
	}
}
