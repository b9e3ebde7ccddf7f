package service

import "errors"

// Encode errors.
var (
	// ErrEmptyPassword is returned before any cryptographic work when the
	// password is empty.
	ErrEmptyPassword = errors.New("empty password")

	// ErrEncryptionFailed wraps a failure of a cryptographic primitive
	// during encode. No envelope is produced.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrInvalidEncodeRequest is returned when the payload to encode is not
	// valid JSON.
	ErrInvalidEncodeRequest = errors.New("invalid encode request")

	// ErrAttachmentNotSupported is returned when an attachment is encoded for
	// an application that cannot carry one.
	ErrAttachmentNotSupported = errors.New("attachments are not supported by this app type")
)

// Decode errors.
var (
	// ErrAuthenticationOrPasswordFailure is the single error every decode
	// failure collapses to: wrong password, tampered ciphertext and
	// unparsable plaintext look the same to the caller.
	ErrAuthenticationOrPasswordFailure = errors.New("authentication or password failure")

	// ErrNoEnvelope is returned when there is no ciphertext to decode.
	ErrNoEnvelope = errors.New("no envelope to decode")
)

// Import errors.
var (
	ErrAppTypeUndetermined = errors.New("app type undetermined")
	ErrAppTypeMismatch     = errors.New("app type mismatch")
	ErrMalformedEnvelope   = errors.New("malformed envelope")

	// ErrSchemaViolation wraps the schema error that rejected an envelope.
	ErrSchemaViolation = errors.New("schema violation")
)
