package adapter

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

// tokenRefreshMargin is how long before expiry a cached device JWT is
// replaced.
const tokenRefreshMargin = time.Minute

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	issuer        string
	deviceID      string
	signKey       string
	tokenDuration time.Duration

	mu    sync.Mutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP implementation of [RemoteAdapter].
// It normalises adapterCfg.HTTPAddress, applies the request timeout, and keys
// the payload HMAC and the device JWT with appCfg.TokenSignKey.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteAdapter, error) {
	client, err := utils.NewBaseHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteAdapter{
		client:        client,
		hasher:        utils.NewHasher(appCfg.TokenSignKey),
		issuer:        appCfg.TokenIssuer,
		deviceID:      appCfg.DeviceID,
		signKey:       appCfg.TokenSignKey,
		tokenDuration: appCfg.TokenDuration,
		logger:        logger,
	}, nil
}

// Deliver implements [RemoteAdapter]. It POSTs the raw payload to
// POST /api/v1/sync/{kind} with the item id as idempotency key, the attempt
// number and an HMAC of the payload. Any 2xx answer is a success.
func (h *httpRemoteAdapter) Deliver(ctx context.Context, req models.DeliveryRequest) error {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetHeader(models.HeaderIdempotencyKey, req.ID).
		SetHeader(models.HeaderAttempt, strconv.Itoa(req.Attempt)).
		SetHeader(models.HeaderEnqueuedAt, req.EnqueuedAt.UTC().Format(time.RFC3339Nano)).
		SetHeader(models.HeaderPayloadHash, h.hasher.SumHex(req.Payload)).
		SetPathParam("kind", req.Kind.String()).
		SetBody([]byte(req.Payload)).
		Post("/api/v1/sync/{kind}")
	if err != nil {
		return fmt.Errorf("%w: deliver %s: %w", ErrTransport, req.ID, err)
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().
			Str("func", "httpRemoteAdapter.Deliver").
			Str("id", req.ID).
			Int("status", resp.StatusCode()).
			Msg("remote rejected delivery")
		return fmt.Errorf("deliver %s: %w", req.ID, err)
	}

	return nil
}

// Ping implements [RemoteAdapter] with GET /health.
func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.bearerToken()
	if err != nil {
		return nil, err
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// bearerToken returns the cached device JWT, issuing a new one when it is
// missing or about to expire.
func (h *httpRemoteAdapter) bearerToken() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := utils.GenerateJWTToken(h.issuer, h.deviceID, h.tokenDuration, h.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrToken, err)
	}

	h.token = token

	return token.SignedString, nil
}
