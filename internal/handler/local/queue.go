package local

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

const (
	QueueStatePending = "pending"
	QueueStateFailed  = "failed"
)

// QueueListing is the body of GET /api/queue. A state filter leaves the
// other list nil.
type QueueListing struct {
	Pending []models.QueueItem `json:"pending,omitempty"`
	Failed  []models.QueueItem `json:"failed,omitempty"`
}

func (h *Handler) listQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := r.URL.Query().Get("state")

	var (
		listing QueueListing
		err     error
	)
	switch state {
	case "":
		if listing.Pending, err = h.services.QueueService.ListPending(ctx); err == nil {
			listing.Failed, err = h.services.QueueService.ListFailed(ctx)
		}
	case QueueStatePending:
		listing.Pending, err = h.services.QueueService.ListPending(ctx)
	case QueueStateFailed:
		listing.Failed, err = h.services.QueueService.ListFailed(ctx)
	default:
		utils.WriteError(w, app.MsgInvalidQueueState, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, listing, http.StatusOK)
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	item, err := h.services.WalletService.Enqueue(r.Context(), models.Kind(chi.URLParam(r, "kind")), json.RawMessage(body))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, item, http.StatusAccepted)
}

func (h *Handler) retryFailedItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncEngine.RetryFailedItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) removeFailedItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.services.QueueService.RemoveFailed(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(removed) == 0 {
		utils.WriteError(w, app.MsgNoFailedItem+" "+id, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return nil, false
		}
		utils.WriteError(w, app.MsgErrorReadingBody, http.StatusBadRequest)
		return nil, false
	}
	return body, true
}
