package local

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

func (h *Handler) submitLoan(w http.ResponseWriter, r *http.Request) {
	handleProducer(h, w, r, h.services.WalletService.SubmitLoanApplication)
}

func (h *Handler) requestCredential(w http.ResponseWriter, r *http.Request) {
	handleProducer(h, w, r, h.services.WalletService.RequestCredential)
}

func (h *Handler) enrollVoice(w http.ResponseWriter, r *http.Request) {
	handleProducer(h, w, r, h.services.WalletService.EnrollVoice)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	handleProducer(h, w, r, h.services.WalletService.UpdateProfile)
}

// handleProducer decodes a T from the body, hands it to produce and answers
// 202 with the queued item. Delivery happens later, in a sync pass.
func handleProducer[T any](h *Handler, w http.ResponseWriter, r *http.Request,
	produce func(context.Context, T) (models.QueueItem, error)) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	item, err := produce(r.Context(), value)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.logger.Debug().Str("id", item.ID).Str("kind", item.Kind.String()).Msg("wallet mutation queued")
	writeJSON(w, r, item, http.StatusAccepted)
}
