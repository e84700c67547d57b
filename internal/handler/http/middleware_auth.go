package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
)

// auth checks the device JWT of the "Authorization: Bearer" header and stores
// the device id in the request context under [utils.DeviceIDCtxKey].
// Every rejection answers 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("device token rejected")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		deviceID, err := token.GetDeviceID()
		if err != nil {
			log.Err(err).Msg("device token has no subject")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.DeviceIDCtxKey, deviceID)
		exposeContext(w, ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
