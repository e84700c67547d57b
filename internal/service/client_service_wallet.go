package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/internal/validators"
	"github.com/MKhiriev/simbaid-sync/models"
)

// DefaultCurrency is applied to loan applications that do not name one.
const DefaultCurrency = "KES"

type clientWalletService struct {
	queue     ClientQueueService
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
	now    func() time.Time
}

func NewClientWalletService(queue ClientQueueService, logger *logger.Logger) ClientWalletService {
	return &clientWalletService{
		queue:     queue,
		validator: validators.NewWalletValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger.WithComponent("wallet"),
		now:       time.Now,
	}
}

func (w *clientWalletService) SubmitLoanApplication(ctx context.Context, loan models.LoanApplication) (models.QueueItem, error) {
	if loan.ApplicationID == "" {
		loan.ApplicationID = w.ids.Generate()
	}
	if loan.Currency == "" {
		loan.Currency = DefaultCurrency
	}
	if loan.SubmittedAt.IsZero() {
		loan.SubmittedAt = w.now().UTC()
	}

	return w.validateAndEnqueue(ctx, models.KindLoanApplication, loan)
}

func (w *clientWalletService) RequestCredential(ctx context.Context, req models.CredentialRequest) (models.QueueItem, error) {
	if req.RequestID == "" {
		req.RequestID = w.ids.Generate()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = w.now().UTC()
	}

	return w.validateAndEnqueue(ctx, models.KindCredentialRequest, req)
}

func (w *clientWalletService) EnrollVoice(ctx context.Context, enrollment models.VoiceEnrollment) (models.QueueItem, error) {
	if enrollment.EnrollmentID == "" {
		enrollment.EnrollmentID = w.ids.Generate()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = w.now().UTC()
	}
	if len(enrollment.Embedding) > 0 {
		enrollment.VoiceHash = VoiceHash(enrollment.Embedding)
	}
	// the raw embedding never leaves the device, only its hash
	enrollment.Embedding = nil

	return w.validateAndEnqueue(ctx, models.KindVoiceEnrollment, enrollment)
}

func (w *clientWalletService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.QueueItem, error) {
	if update.UpdatedAt.IsZero() {
		update.UpdatedAt = w.now().UTC()
	}

	return w.validateAndEnqueue(ctx, models.KindProfileUpdate, update)
}

func (w *clientWalletService) Enqueue(ctx context.Context, kind models.Kind, payload json.RawMessage) (models.QueueItem, error) {
	return w.queue.Enqueue(ctx, kind, payload)
}

func (w *clientWalletService) validateAndEnqueue(ctx context.Context, kind models.Kind, value any) (models.QueueItem, error) {
	if err := w.validator.Validate(ctx, value); err != nil {
		w.logger.Debug().Err(err).Str("kind", kind.String()).Msg("wallet mutation rejected")
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("error encoding %s payload: %w", kind, err)
	}

	return w.queue.Enqueue(ctx, kind, payload)
}

// VoiceHash returns the hex BLAKE2b-256 digest of a voice embedding, the
// value registered with the DID.
func VoiceHash(embedding []byte) string {
	sum := blake2b.Sum256(embedding)
	return hex.EncodeToString(sum[:])
}
