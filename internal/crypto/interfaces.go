// Package crypto seals queued payloads at rest.
//
// A passphrase is stretched with Argon2id into a 256-bit key and payloads
// are encrypted with AES-256-GCM. Each sealed blob carries the salt it was
// derived with, so blobs stay readable after a restart without any extra
// key material on disk:
//
//	blob = version(1) ‖ salt(16) ‖ nonce(12) ‖ ciphertext
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_sealer_mock.go -package=mock

// PayloadSealer encrypts and decrypts opaque payload bytes. The queue store
// calls Seal before a payload is written and Open after it is read; the
// payload content itself is never interpreted.
type PayloadSealer interface {
	// Seal returns the sealed form of plaintext.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It fails with [ErrOpenFailed] when the blob was
	// sealed with another passphrase or has been tampered with.
	Open(sealed []byte) ([]byte, error)

	// Enabled reports whether Seal actually encrypts.
	Enabled() bool
}
