package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// testArgonParams keeps Argon2id cheap in tests.
var testArgonParams = argonParams{time: 1, memory: 1024, threads: 1}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := generateSalt()
	if err != nil {
		t.Fatalf("generateSalt error: %v", err)
	}
	s2, err := generateSalt()
	if err != nil {
		t.Fatalf("generateSalt error: %v", err)
	}

	if len(s1) != saltSize || len(s2) != saltSize {
		t.Fatalf("salt length = %d/%d, want %d", len(s1), len(s2), saltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	salt := bytes.Repeat([]byte{0xAB}, saltSize)

	k1 := deriveKey(passphrase, salt, testArgonParams)
	k2 := deriveKey(passphrase, salt, testArgonParams)

	if len(k1) != keySize {
		t.Fatalf("key length = %d, want %d", len(k1), keySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same passphrase+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	passphrase := []byte("same passphrase")

	k1 := deriveKey(passphrase, bytes.Repeat([]byte{0x01}, saltSize), testArgonParams)
	k2 := deriveKey(passphrase, bytes.Repeat([]byte{0x02}, saltSize), testArgonParams)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, keySize)
	aad := []byte("header")
	plain := []byte(`{"amount":25000}`)

	blob, err := seal(key, plain, aad)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	got, err := open(key, blob, aad)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypted payload mismatch")
	}

	if _, err := open(key, blob, []byte("other header")); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed for mismatched header, got %v", err)
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, keySize)
	plain := []byte("same plaintext")

	blob1, err := seal(key, plain, nil)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}
	blob2, err := seal(key, plain, nil)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	if bytes.Equal(blob1[:12], blob2[:12]) {
		t.Fatalf("expected different nonces for two encryptions")
	}
	if bytes.Equal(blob1, blob2) {
		t.Fatalf("expected different ciphertext blobs for two encryptions")
	}
}

func TestOpen_TooShort(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, keySize)

	if _, err := open(key, []byte{1, 2, 3}, nil); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed, got %v", err)
	}
}
