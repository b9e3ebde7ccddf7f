package crypto

import "errors"

// Sentinel errors returned by schemes and ciphers. The service layer folds
// every decrypt-side error into a single authentication failure, so these
// mostly matter for logs and tests.
var (
	// ErrInvalidIV is returned when the IV is missing or has the wrong length.
	ErrInvalidIV = errors.New("invalid initialisation vector")

	// ErrMissingSalt is returned when the legacy scheme gets no salt.
	ErrMissingSalt = errors.New("missing key derivation salt")

	// ErrInvalidCiphertext is returned when the ciphertext length cannot be
	// produced by the cipher.
	ErrInvalidCiphertext = errors.New("invalid ciphertext length")

	// ErrInvalidPadding is returned when PKCS#7 padding does not verify,
	// which is what a wrong key usually produces in CBC mode.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrAuthentication is returned when an authenticated mode rejects the tag.
	ErrAuthentication = errors.New("message authentication failed")
)
