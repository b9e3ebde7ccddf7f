package models

import "strconv"

// FormatVersion is the envelope format version number ("v").
type FormatVersion float64

const (
	// VersionUndefined is what envelopes from the earliest producers carry.
	VersionUndefined FormatVersion = 0

	// LastBarePayloadVersion is the newest version whose plaintext is the bare
	// payload without the {options, payload} wrapper.
	LastBarePayloadVersion FormatVersion = 1.2

	// FirstCurrentCipherVersion introduced the digest key + AES-CBC path.
	FirstCurrentCipherVersion FormatVersion = 1.4

	// CurrentVersion is written by every encode.
	CurrentVersion FormatVersion = 1.4
)

// IsDefined reports whether the envelope carried a version at all.
func (v FormatVersion) IsDefined() bool {
	return v != VersionUndefined
}

// IsLegacyCipher reports whether the envelope must be opened with the
// PBKDF2 + AES-CCM path.
func (v FormatVersion) IsLegacyCipher() bool {
	return !v.IsDefined() || v < FirstCurrentCipherVersion
}

// HasBarePayload reports whether the decrypted text is the raw payload
// rather than an {options, payload} object.
func (v FormatVersion) HasBarePayload() bool {
	return !v.IsDefined() || v <= LastBarePayloadVersion
}

func (v FormatVersion) String() string {
	if !v.IsDefined() {
		return "undefined"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}
