package validators

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/simbaid-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID        = "id"
	FieldKind      = "kind"
	FieldPayload   = "payload"
	FieldAttempt   = "attempt"
	FieldAmount    = "amount"
	FieldCurrency  = "currency"
	FieldPurpose   = "purpose"
	FieldTerm      = "term"
	FieldIncome    = "income"
	FieldAgreement = "agree_to_terms"
	FieldType      = "type"
	FieldDID       = "did"
	FieldLanguage  = "language"
	FieldSteps     = "completed_steps"
	FieldVoiceHash = "voice_hash"
	FieldFields    = "fields"
	FieldEmail     = "email"
	FieldPhone     = "phone_number"
)

// voiceHashLength is the BLAKE2b-256 digest size.
const voiceHashLength = 32

var (
	kindPattern  = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)

	loanPurposes = []models.LoanPurpose{
		models.LoanPurposeAgriculture,
		models.LoanPurposeBusiness,
		models.LoanPurposeEducation,
		models.LoanPurposeHealth,
		models.LoanPurposeEquipment,
		models.LoanPurposeOther,
	}
	credentialTypes = []models.CredentialType{
		models.CredentialGovernmentID,
		models.CredentialEducation,
		models.CredentialProfessional,
		models.CredentialHealth,
	}
	voiceLanguages = []models.VoiceLanguage{
		models.VoiceLanguageEnglish,
		models.VoiceLanguageSwahili,
		models.VoiceLanguageYoruba,
	}
)

// WalletValidator validates wallet mutations before they are queued and
// deliveries before the remote accepts them.
type WalletValidator struct {
}

func NewWalletValidator() Validator {
	return &WalletValidator{}
}

// Validate implements [Validator]. fields restricts validation to the named
// fields; no fields means all of them.
func (v *WalletValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoanApplication:
		return v.validateLoan(value, fields...)
	case *models.LoanApplication:
		return v.validateLoan(*value, fields...)

	case models.CredentialRequest:
		return v.validateCredential(value, fields...)
	case *models.CredentialRequest:
		return v.validateCredential(*value, fields...)

	case models.VoiceEnrollment:
		return v.validateVoice(value, fields...)
	case *models.VoiceEnrollment:
		return v.validateVoice(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfile(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfile(*value, fields...)

	case models.DeliveryRequest:
		return v.validateDelivery(value, fields...)
	case *models.DeliveryRequest:
		return v.validateDelivery(*value, fields...)

	case models.Kind:
		return validateKind(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *WalletValidator) validateLoan(loan models.LoanApplication, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAmount, FieldCurrency, FieldPurpose, FieldTerm, FieldIncome, FieldAgreement}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(loan.ApplicationID) == "" {
				return ErrInvalidID
			}
		case FieldAmount:
			if loan.Amount <= 0 {
				return ErrInvalidAmount
			}
		case FieldCurrency:
			if len(loan.Currency) != 3 || strings.ToUpper(loan.Currency) != loan.Currency {
				return ErrInvalidCurrency
			}
		case FieldPurpose:
			if !slices.Contains(loanPurposes, loan.Purpose) {
				return ErrInvalidPurpose
			}
		case FieldTerm:
			if !slices.Contains(models.LoanTerms, loan.TermMonths) {
				return ErrInvalidTerm
			}
		case FieldIncome:
			if loan.MonthlyIncome < 0 || loan.MonthlyExpenses < 0 {
				return ErrInvalidIncome
			}
		case FieldAgreement:
			if !loan.AgreeToTerms {
				return ErrTermsNotAccepted
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateCredential(req models.CredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldDID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(req.RequestID) == "" {
				return ErrInvalidID
			}
		case FieldType:
			if !slices.Contains(credentialTypes, req.Type) {
				return ErrInvalidCredential
			}
		case FieldDID:
			if !isDID(req.SubjectDID) {
				return ErrInvalidDID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateVoice(enrollment models.VoiceEnrollment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDID, FieldLanguage, FieldSteps, FieldVoiceHash}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(enrollment.EnrollmentID) == "" {
				return ErrInvalidID
			}
		case FieldDID:
			if !isDID(enrollment.DID) {
				return ErrInvalidDID
			}
		case FieldLanguage:
			if !slices.Contains(voiceLanguages, enrollment.Language) {
				return ErrInvalidLanguage
			}
		case FieldSteps:
			if enrollment.CompletedSteps != models.VoiceEnrollmentSteps {
				return ErrIncompleteVoice
			}
		case FieldVoiceHash:
			raw, err := hex.DecodeString(enrollment.VoiceHash)
			if err != nil || len(raw) != voiceHashLength {
				return ErrInvalidVoiceHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateProfile(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFields, FieldEmail, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if update.Email == nil {
				continue
			}
			if _, err := mail.ParseAddress(*update.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if update.PhoneNumber != nil && !phonePattern.MatchString(*update.PhoneNumber) {
				return ErrInvalidPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateDelivery(req models.DeliveryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKind, FieldPayload, FieldAttempt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(req.ID) == "" {
				return ErrInvalidID
			}
		case FieldKind:
			if err := validateKind(req.Kind); err != nil {
				return err
			}
		case FieldPayload:
			if len(req.Payload) == 0 || !json.Valid(req.Payload) {
				return ErrInvalidPayload
			}
		case FieldAttempt:
			if req.Attempt < 1 {
				return ErrInvalidAttempt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateKind accepts any lower-case snake_case label; kinds are an open set.
func validateKind(kind models.Kind) error {
	if !kindPattern.MatchString(string(kind)) {
		return ErrInvalidKind
	}
	return nil
}

func isDID(s string) bool {
	parts := strings.SplitN(s, ":", 3)
	return len(parts) == 3 && parts[0] == "did" && parts[1] != "" && parts[2] != ""
}
