package store

import (
	"context"

	"github.com/MKhiriev/go-pass-html/models"
)

// EnvelopeSlot holds the single current envelope of a document.
//
// The slot is replaced wholesale and never mutated field by field: callers
// receive deep copies from Get, so edits to a returned envelope do not reach
// the slot until they are handed back through Replace.
type EnvelopeSlot interface {
	// Get returns a deep copy of the current envelope.
	Get() models.Envelope

	// Replace swaps the current envelope for env.
	Replace(env models.Envelope)

	// Consume returns the current envelope and resets the slot to the empty
	// envelope. It is called once decrypted content has been handed out.
	Consume() models.Envelope
}

// DocumentFileStorage performs the file I/O around the codec: reading and
// writing host documents and attachment files.
type DocumentFileStorage interface {
	LoadDocument(ctx context.Context, path string) (string, error)
	SaveDocument(ctx context.Context, path string, document []byte) error
	LoadAttachment(ctx context.Context, path string) (models.Attachment, error)
	SaveAttachment(ctx context.Context, dir string, attachment models.Attachment) (string, error)
}
