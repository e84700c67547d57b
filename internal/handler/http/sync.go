// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

// acceptDelivery stores one delivery attempt of a queue item.
//
// The item id comes from the Idempotency-Key header, the attempt number from
// X-Attempt and the kind from the URL. The first accepted attempt answers
// 201 Created, a re-delivery of the same payload 200 OK.
func (h *Handler) acceptDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, found := utils.GetDeviceIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.acceptDelivery").Msg("no device ID in context")
		utils.WriteError(w, app.MsgNoDeviceID, http.StatusUnauthorized)
		return
	}

	itemID := r.Header.Get(models.HeaderIdempotencyKey)
	if itemID == "" {
		utils.WriteError(w, app.MsgMissingIdempotencyKey, http.StatusBadRequest)
		return
	}

	attempt := 1
	if raw := r.Header.Get(models.HeaderAttempt); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.WriteError(w, app.MsgInvalidAttempt, http.StatusBadRequest)
			return
		}
		attempt = n
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.acceptDelivery").Msg("failed to read request body")
		utils.WriteError(w, app.MsgErrorReadingBody, http.StatusBadRequest)
		return
	}

	delivery := models.Delivery{
		DeviceID:   deviceID,
		ItemID:     itemID,
		Kind:       models.Kind(chi.URLParam(r, "kind")),
		Payload:    json.RawMessage(body),
		Attempt:    attempt,
		ReceivedAt: time.Now().UTC(),
	}

	receipt, err := h.services.DeliveryService.Accept(ctx, delivery, r.Header.Get(models.HeaderPayloadHash))
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("item_id", itemID).Msg("delivery was not accepted")
			utils.WriteError(w, app.MsgInternalServerError, status)
			return
		}
		utils.WriteError(w, err.Error(), status)
		return
	}

	status := http.StatusCreated
	if receipt.Duplicate {
		status = http.StatusOK
	}
	_, _ = utils.WriteJSON(w, receipt, status)
}
