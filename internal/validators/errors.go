package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidKind        = errors.New("invalid kind")
	ErrInvalidPayload     = errors.New("payload must be valid JSON")
	ErrInvalidAttempt     = errors.New("attempt must be positive")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrInvalidPurpose     = errors.New("invalid loan purpose")
	ErrInvalidTerm        = errors.New("invalid loan term")
	ErrInvalidIncome      = errors.New("income and expenses cannot be negative")
	ErrTermsNotAccepted   = errors.New("loan terms must be accepted")
	ErrInvalidCredential  = errors.New("invalid credential type")
	ErrInvalidDID         = errors.New("invalid decentralized identifier")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrIncompleteVoice    = errors.New("voice enrollment is incomplete")
	ErrInvalidVoiceHash   = errors.New("invalid voice hash")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)
