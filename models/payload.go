// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// PlainPayload is the plaintext serialised into the envelope ciphertext for
// format versions above 1.2. Both members are application-defined JSON.
type PlainPayload struct {
	// Options holds application settings (sort order, display flags, ...).
	Options json.RawMessage `json:"options"`

	// Payload holds the application content (record list, note text).
	Payload json.RawMessage `json:"payload"`
}

// Attachment is a binary file stored next to a note.
type Attachment struct {
	// FileName is the original name of the file.
	FileName string

	// Data is the raw file content.
	Data []byte
}

// EncodeRequest carries everything the encoder needs besides the password.
type EncodeRequest struct {
	// Plain is the content to encrypt.
	Plain PlainPayload

	// Hint is stored unencrypted and shown before decryption. Optional.
	Hint string

	// Attachment is encrypted into the fn/slices extension fields when set.
	Attachment *Attachment
}

// DecodedPayload is the result of a successful decode.
type DecodedPayload struct {
	// Options is the decrypted options object, or the caller's default for
	// bare-payload versions.
	Options json.RawMessage

	// Payload is the decrypted content. Bare legacy text that is not JSON is
	// returned as a JSON string.
	Payload json.RawMessage

	// Hint is the plaintext hint the envelope carried.
	Hint string

	// Version is the format version the envelope was written with.
	Version FormatVersion

	// Attachment is set when the envelope carried attachment fields.
	Attachment *Attachment
}
