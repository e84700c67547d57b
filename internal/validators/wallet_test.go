// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simbaid-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func validLoan() models.LoanApplication {
	return models.LoanApplication{
		ApplicationID: "loan-1",
		Amount:        25000,
		Currency:      "KES",
		Purpose:       models.LoanPurposeAgriculture,
		TermMonths:    12,
		MonthlyIncome: 30000,
		AgreeToTerms:  true,
	}
}

func validVoice() models.VoiceEnrollment {
	return models.VoiceEnrollment{
		EnrollmentID:   "voice-1",
		DID:            "did:simbaid:123",
		Language:       models.VoiceLanguageSwahili,
		CompletedSteps: models.VoiceEnrollmentSteps,
		VoiceHash:      strings.Repeat("ab", 32),
	}
}

func validDelivery() models.DeliveryRequest {
	return models.DeliveryRequest{
		ID:      "loan_application_1",
		Kind:    models.KindLoanApplication,
		Payload: json.RawMessage(`{"amount":1}`),
		Attempt: 1,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	loan := validLoan()
	assert.NoError(t, v.Validate(ctx, loan))
	assert.NoError(t, v.Validate(ctx, &loan))

	delivery := validDelivery()
	assert.NoError(t, v.Validate(ctx, delivery))
	assert.NoError(t, v.Validate(ctx, &delivery))

	assert.NoError(t, v.Validate(ctx, models.Kind("custom_kind")))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewWalletValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validLoan(), "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), validDelivery(), "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Loan applications
// ---------------------------------------------------------------------------

func TestValidate_LoanApplication(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *models.LoanApplication)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.LoanApplication) {}},
		{name: "missing id", mutate: func(l *models.LoanApplication) { l.ApplicationID = " " }, wantErr: ErrInvalidID},
		{name: "zero amount", mutate: func(l *models.LoanApplication) { l.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "lower-case currency", mutate: func(l *models.LoanApplication) { l.Currency = "kes" }, wantErr: ErrInvalidCurrency},
		{name: "unknown purpose", mutate: func(l *models.LoanApplication) { l.Purpose = "holiday" }, wantErr: ErrInvalidPurpose},
		{name: "unsupported term", mutate: func(l *models.LoanApplication) { l.TermMonths = 7 }, wantErr: ErrInvalidTerm},
		{name: "negative expenses", mutate: func(l *models.LoanApplication) { l.MonthlyExpenses = -1 }, wantErr: ErrInvalidIncome},
		{name: "terms not accepted", mutate: func(l *models.LoanApplication) { l.AgreeToTerms = false }, wantErr: ErrTermsNotAccepted},
	}

	v := NewWalletValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := validLoan()
			tt.mutate(&loan)

			err := v.Validate(context.Background(), loan)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_LoanApplication_FieldScope(t *testing.T) {
	loan := validLoan()
	loan.AgreeToTerms = false

	err := NewWalletValidator().Validate(context.Background(), loan, FieldAmount, FieldTerm)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Credentials, voice, profile
// ---------------------------------------------------------------------------

func TestValidate_CredentialRequest(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	req := models.CredentialRequest{RequestID: "cred-1", Type: models.CredentialEducation, SubjectDID: "did:simbaid:abc"}
	require.NoError(t, v.Validate(ctx, req))

	bad := req
	bad.Type = "passport"
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidCredential)

	bad = req
	bad.SubjectDID = "did:simbaid"
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidDID)
}

func TestValidate_VoiceEnrollment(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *models.VoiceEnrollment)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.VoiceEnrollment) {}},
		{name: "bad did", mutate: func(e *models.VoiceEnrollment) { e.DID = "simbaid:1" }, wantErr: ErrInvalidDID},
		{name: "unknown language", mutate: func(e *models.VoiceEnrollment) { e.Language = "fr" }, wantErr: ErrInvalidLanguage},
		{name: "incomplete", mutate: func(e *models.VoiceEnrollment) { e.CompletedSteps = 2 }, wantErr: ErrIncompleteVoice},
		{name: "short hash", mutate: func(e *models.VoiceEnrollment) { e.VoiceHash = "abcd" }, wantErr: ErrInvalidVoiceHash},
		{name: "non-hex hash", mutate: func(e *models.VoiceEnrollment) { e.VoiceHash = strings.Repeat("zz", 32) }, wantErr: ErrInvalidVoiceHash},
	}

	v := NewWalletValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validVoice()
			tt.mutate(&e)

			err := v.Validate(context.Background(), &e)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{FullName: ptr("Amina Otieno")}))
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Email: ptr("amina@example.com"), PhoneNumber: ptr("+254 700 000000")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Email: ptr("not-an-email")}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{PhoneNumber: ptr("call me")}), ErrInvalidPhoneNumber)
}

// ---------------------------------------------------------------------------
// Deliveries
// ---------------------------------------------------------------------------

func TestValidate_DeliveryRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.DeliveryRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.DeliveryRequest) {}},
		{name: "extension kind", mutate: func(r *models.DeliveryRequest) { r.Kind = "reputation_vote" }},
		{name: "missing id", mutate: func(r *models.DeliveryRequest) { r.ID = "" }, wantErr: ErrInvalidID},
		{name: "upper-case kind", mutate: func(r *models.DeliveryRequest) { r.Kind = "Loan" }, wantErr: ErrInvalidKind},
		{name: "kind with path", mutate: func(r *models.DeliveryRequest) { r.Kind = "a/b" }, wantErr: ErrInvalidKind},
		{name: "empty payload", mutate: func(r *models.DeliveryRequest) { r.Payload = nil }, wantErr: ErrInvalidPayload},
		{name: "broken payload", mutate: func(r *models.DeliveryRequest) { r.Payload = json.RawMessage(`{"a":`) }, wantErr: ErrInvalidPayload},
		{name: "zero attempt", mutate: func(r *models.DeliveryRequest) { r.Attempt = 0 }, wantErr: ErrInvalidAttempt},
	}

	v := NewWalletValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validDelivery()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
