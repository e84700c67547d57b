package local

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

// statusFrame is pushed to websocket subscribers on every status change.
type statusFrame struct {
	Type   string            `json:"type"`
	Status models.SyncStatus `json:"status"`
}

// controlFrame is read from websocket subscribers. {"type":"sync"} starts a
// background sync pass.
type controlFrame struct {
	Type string `json:"type"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.StatusService.GetStatus(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, status, http.StatusOK)
}

// streamStatus upgrades to a websocket, sends the current status and then
// every change until either side closes.
func (h *Handler) streamStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// subscribe before reading the snapshot so no change is missed in between
	updates, cancel := h.services.StatusService.Subscribe(wsStatusBuffer)
	defer cancel()

	initial, err := h.services.StatusService.GetStatus(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	controls := make(chan controlFrame, wsControlBuffer)
	go func() {
		defer close(controls)
		for {
			var frame controlFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			select {
			case controls <- frame:
			default:
			}
		}
	}()

	if err = writeFrame(conn, statusFrame{Type: "status", Status: initial}); err != nil {
		return
	}

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case frame, ok := <-controls:
			if !ok {
				return
			}
			if frame.Type == "sync" {
				h.services.SyncEngine.TriggerSync(r.Context())
			}

		case status, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(wsWriteTimeout))
				return
			}
			if err = writeFrame(conn, statusFrame{Type: "status", Status: status}); err != nil {
				log.Debug().Err(err).Msg("websocket subscriber gone")
				return
			}

		case <-ping.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, frame statusFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// sameOrigin allows native clients without an Origin header and browsers on
// the same host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Host == r.Host
}
