// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// JSON names of every envelope field known to the current schema.
const (
	FieldCipher  = "cipher"
	FieldHash    = "hash"
	FieldMode    = "mode"
	FieldKeySize = "ks"
	FieldTagSize = "ts"
	FieldIter    = "iter"

	FieldVersion    = "v"
	FieldIV         = "iv"
	FieldSalt       = "salt"
	FieldHint       = "hint"
	FieldCiphertext = "ct"
	FieldFileName   = "fn"
	FieldSlices     = "slices"
)

// knownFields lists the keys handled by the typed part of [Envelope].
// Anything else ends up in Envelope.Extra.
var knownFields = []string{
	FieldCipher, FieldHash, FieldMode, FieldKeySize, FieldTagSize, FieldIter,
	FieldVersion, FieldIV, FieldSalt, FieldHint, FieldCiphertext, FieldFileName, FieldSlices,
}

// IsKnownField reports whether name is one of the envelope fields the
// current software understands.
func IsKnownField(name string) bool {
	return slices.Contains(knownFields, name)
}

// FixedFields identify the algorithms an envelope was produced with. They are
// constant per schema version and are compared on import to detect format
// drift.
type FixedFields struct {
	// Cipher is the block cipher name ("aes").
	Cipher string `json:"cipher,omitempty"`

	// Hash is the digest used for key derivation ("sha256").
	Hash string `json:"hash,omitempty"`

	// Mode is the authenticated mode of the legacy path ("ccm").
	Mode string `json:"mode,omitempty"`

	// KeySize is the key length in bits.
	KeySize int `json:"ks,omitempty"`

	// TagSize is the legacy authentication tag length in bits.
	TagSize int `json:"ts,omitempty"`

	// Iterations is the legacy PBKDF2 iteration count.
	Iterations int `json:"iter,omitempty"`
}

// DefaultFixedFields returns the fixed fields every envelope written by this
// software carries.
func DefaultFixedFields() FixedFields {
	return FixedFields{
		Cipher:     "aes",
		Hash:       "sha256",
		Mode:       "ccm",
		KeySize:    256,
		TagSize:    64,
		Iterations: 10000,
	}
}

// Envelope is the encrypted record embedded in the host document.
//
// The zero value is not a usable envelope; use [NewEmptyEnvelope] for the
// "nothing stored yet" state.
type Envelope struct {
	FixedFields

	// Version is the format version number ("v"). Zero means undefined,
	// which only very old producers emit.
	Version FormatVersion `json:"v,omitempty"`

	// IV is the base64 initialisation vector.
	IV string `json:"iv"`

	// Salt is the base64 PBKDF2 salt. Legacy envelopes only.
	Salt string `json:"salt,omitempty"`

	// Hint is shown in plaintext before decryption.
	Hint string `json:"hint,omitempty"`

	// Ciphertext is the base64 encrypted payload.
	Ciphertext string `json:"ct,omitempty"`

	// FileName is the base64 encrypted attachment filename (notes only).
	FileName string `json:"fn,omitempty"`

	// Slices holds the base64 encrypted attachment chunks in offset order.
	Slices []string `json:"slices,omitempty"`

	// Extra keeps fields unknown to the current schema untouched so they can
	// be written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// envelopeFields breaks the MarshalJSON/UnmarshalJSON recursion.
type envelopeFields Envelope

// NewEmptyEnvelope returns the envelope a document carries before anything
// has been encrypted into it.
func NewEmptyEnvelope() Envelope {
	return Envelope{
		FixedFields: DefaultFixedFields(),
		Version:     CurrentVersion,
	}
}

// HasCiphertext reports whether the envelope holds encrypted content.
func (e Envelope) HasCiphertext() bool {
	return e.Ciphertext != ""
}

// HasAttachment reports whether attachment extension fields are present.
func (e Envelope) HasAttachment() bool {
	return e.FileName != "" || len(e.Slices) > 0
}

// Clone returns a deep copy of e.
func (e Envelope) Clone() Envelope {
	out := e
	if e.Slices != nil {
		out.Slices = slices.Clone(e.Slices)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = slices.Clone(v)
		}
	}
	return out
}

// MarshalJSON writes the typed fields and then every preserved unknown field.
// Keys are emitted in sorted order so the output is stable.
func (e Envelope) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(envelopeFields(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return typed, nil
	}

	merged := make(map[string]json.RawMessage, len(e.Extra)+len(knownFields))
	if err = json.Unmarshal(typed, &merged); err != nil {
		return nil, fmt.Errorf("merge envelope fields: %w", err)
	}
	for _, k := range slices.Sorted(maps.Keys(e.Extra)) {
		if IsKnownField(k) {
			continue
		}
		merged[k] = e.Extra[k]
	}

	return json.Marshal(merged)
}

// UnmarshalJSON reads the typed fields and stashes every other key in Extra.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var typed envelopeFields
	if err := json.Unmarshal(b, &typed); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for k, v := range all {
		if IsKnownField(k) {
			continue
		}
		if typed.Extra == nil {
			typed.Extra = make(map[string]json.RawMessage)
		}
		typed.Extra[k] = v
	}

	*e = Envelope(typed)
	return nil
}
