package service

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

// authService verifies device JWTs presented to the delivery API.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the devices.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens issued by anyone else
	// are rejected.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the server app settings.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer and expiry failures, as well as a missing subject, are
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("device token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err = token.GetDeviceID(); err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
