// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

const sealedVersion byte = 1

// passphraseSealer is the Argon2id + AES-GCM [PayloadSealer].
//
// The salt is generated once per process; keys derived for salts found in
// older blobs are cached so Argon2id runs once per distinct salt.
type passphraseSealer struct {
	passphrase []byte
	params     argonParams

	salt []byte
	key  []byte

	mu   sync.Mutex
	keys map[string][]byte
}

// NewPassphraseSealer returns a [PayloadSealer] keyed by passphrase.
// An empty passphrase yields the pass-through sealer.
func NewPassphraseSealer(passphrase string) (PayloadSealer, error) {
	if passphrase == "" {
		return NewNopSealer(), nil
	}
	return newPassphraseSealer(passphrase, defaultArgonParams)
}

func newPassphraseSealer(passphrase string, params argonParams) (*passphraseSealer, error) {
	salt, err := generateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	s := &passphraseSealer{
		passphrase: []byte(passphrase),
		params:     params,
		salt:       salt,
		keys:       make(map[string][]byte),
	}
	s.key = deriveKey(s.passphrase, salt, params)
	s.keys[string(salt)] = s.key

	return s, nil
}

func (s *passphraseSealer) Enabled() bool {
	return true
}

func (s *passphraseSealer) Seal(plaintext []byte) ([]byte, error) {
	header := make([]byte, 0, 1+saltSize)
	header = append(header, sealedVersion)
	header = append(header, s.salt...)

	body, err := seal(s.key, plaintext, header)
	if err != nil {
		return nil, err
	}

	return append(header, body...), nil
}

func (s *passphraseSealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < 1+saltSize {
		return nil, fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}
	if sealed[0] != sealedVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrOpenFailed, sealed[0])
	}

	header := sealed[:1+saltSize]
	salt := header[1:]

	return open(s.keyFor(salt), sealed[len(header):], header)
}

func (s *passphraseSealer) keyFor(salt []byte) []byte {
	if bytes.Equal(salt, s.salt) {
		return s.key
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.keys[string(salt)]; ok {
		return key
	}
	key := deriveKey(s.passphrase, salt, s.params)
	s.keys[string(salt)] = key
	return key
}

type nopSealer struct{}

// NewNopSealer returns a [PayloadSealer] that stores payloads as they are.
func NewNopSealer() PayloadSealer {
	return nopSealer{}
}

func (nopSealer) Seal(plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

func (nopSealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) > 0 && sealed[0] == sealedVersion {
		return nil, errors.New("payload is sealed but no passphrase is configured")
	}
	return sealed, nil
}

func (nopSealer) Enabled() bool {
	return false
}
