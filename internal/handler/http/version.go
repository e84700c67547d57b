package http

import (
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}

// health answers 200 while the delivery database is reachable and 503
// otherwise, so probes treat a server without storage as down.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DeliveryService.Ping(r.Context()); err != nil {
		logger := h.logger.With().Str("func", "*Handler.health").Logger()
		logger.Err(err).Msg("database ping failed")
		utils.WriteError(w, app.MsgStorageUnavailable, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
