package crypto

import "github.com/MKhiriev/go-pass-html/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyParams carries the per-envelope inputs of key derivation and cipher
// setup. Which members a scheme reads depends on the scheme.
type KeyParams struct {
	// IV is the raw initialisation vector (16 bytes).
	IV []byte

	// Salt is the raw PBKDF2 salt. Legacy scheme only.
	Salt []byte

	// AData is authenticated together with the ciphertext. Legacy scheme
	// only; the current scheme ignores it.
	AData []byte
}

// Cipher encrypts and decrypts with a key derived for one codec operation.
// It is safe for concurrent use so attachment chunks can be processed in
// parallel. A Cipher must not outlive the operation it was derived for.
type Cipher interface {
	// Encrypt returns the ciphertext of plaintext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt returns the plaintext of ciphertext or an error when the key is
	// wrong or the ciphertext was tampered with or truncated.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Scheme is one historical key-derivation + cipher combination.
//
//	legacy  (v undefined or < 1.4): PBKDF2-HMAC-SHA256 + AES-CCM, hint as AD
//	current (v >= 1.4):             SHA-256(UTF-16LE(password)) + AES-CBC
type Scheme interface {
	// Name returns a short identifier used in logs.
	Name() string

	// Derive stretches password into a key and binds it to params.
	Derive(password string, params KeyParams) (Cipher, error)
}

// Selector picks the scheme for an envelope version.
type Selector interface {
	// ForVersion returns the scheme envelopes of version v were written with.
	ForVersion(v models.FormatVersion) Scheme

	// Current returns the scheme every encode uses.
	Current() Scheme
}
