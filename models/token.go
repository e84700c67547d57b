package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a device JWT with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
//
// DeviceID is a cached copy of the "sub" claim. It is populated after a
// successful call to [Token.GetDeviceID] or during token construction.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// DeviceID identifies the wallet installation that owns the token.
	DeviceID string `json:"-"`
}

// GetDeviceID extracts the device identifier from the "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetDeviceID() (string, error) {
	deviceID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting DeviceID from token: %w", err)
	}
	if deviceID == "" {
		return "", fmt.Errorf("error extracting DeviceID from token: empty subject")
	}

	return deviceID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
