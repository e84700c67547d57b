// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// ErrOpenFailed is returned when a sealed blob cannot be decrypted.
var ErrOpenFailed = errors.New("payload decryption failed")

// argonParams are the Argon2id tuning parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// defaultArgonParams follows the OWASP (2024) recommendation:
// 1 iteration, 64 MiB, 4 threads.
var defaultArgonParams = argonParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
}

// generateSalt reads a random salt from the OS CSPRNG.
func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// deriveKey stretches passphrase into a 256-bit key with Argon2id.
func deriveKey(passphrase, salt []byte, p argonParams) []byte {
	return argon2.IDKey(passphrase, salt, p.time, p.memory, p.threads, keySize)
}

// seal encrypts plaintext with key using AES-256-GCM and returns
// nonce ‖ ciphertext. additionalData is authenticated but not encrypted.
func seal(key, plaintext, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, additionalData), nil
}

// open reverses seal.
func open(key, blob, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
