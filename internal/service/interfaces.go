package service

import (
	"context"

	"github.com/MKhiriev/go-pass-html/models"
)

// CodecService turns plaintext into envelopes and back. It holds no envelope
// state of its own.
type CodecService interface {
	// Encode encrypts req with password into a fresh envelope of the current
	// format version.
	Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error)

	// Decode decrypts env with password. defaults shape the payload and
	// options of envelopes whose plaintext is a bare payload.
	Decode(ctx context.Context, password string, env models.Envelope, defaults models.DecodeDefaults) (models.DecodedPayload, error)
}

// CodecServiceWrapper defines middleware composition for CodecService.
// Implementations wrap an existing CodecService to add behavior such as
// validating.
type CodecServiceWrapper interface {
	Wrap(CodecService) CodecService // returns a decorated CodecService applying additional behavior
}

// ImportService validates the envelope embedded in a foreign document.
type ImportService interface {
	// ImportFromText extracts and validates the envelope of text. It has no
	// side effects; applying the result is up to the caller.
	ImportFromText(ctx context.Context, text string, expected models.AppType) (models.Envelope, error)
}

// VaultService owns the current envelope of one document and runs codec
// operations against it one at a time.
type VaultService interface {
	// Load initialises the current envelope from the application's own
	// document. A document without an envelope yields the empty envelope.
	Load(ctx context.Context, text string) error

	// Encode encrypts req and makes the result the current envelope.
	Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error)

	// Decode decrypts the current envelope and consumes it on success.
	Decode(ctx context.Context, password string) (models.DecodedPayload, error)

	// ImportFromText validates a foreign document and makes its envelope the
	// current one.
	ImportFromText(ctx context.Context, text string) (models.Envelope, error)

	// HasEnvelope reports whether the current envelope carries ciphertext.
	HasEnvelope() bool

	// Hint returns the plaintext hint of the current envelope.
	Hint() string

	// Current returns a copy of the current envelope.
	Current() models.Envelope

	// AppType returns the application the vault serves.
	AppType() models.AppType
}
