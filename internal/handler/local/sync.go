package local

import (
	"net/http"
)

// ClearResult is the body of POST /api/sync/clear.
type ClearResult struct {
	Removed []string `json:"removed"`
}

// syncNow runs a sync pass and answers with its result. Storage errors of
// the pass answer 500 even though some items may have been delivered.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncEngine.SyncPendingItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) retryFailed(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncEngine.RetryFailedItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) clearFailed(w http.ResponseWriter, r *http.Request) {
	removed, err := h.services.SyncEngine.ClearFailedItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if removed == nil {
		removed = []string{}
	}

	writeJSON(w, r, ClearResult{Removed: removed}, http.StatusOK)
}
