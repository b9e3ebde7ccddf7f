package models

import "encoding/json"

// CredentialRecord is one entry of the passwords application. A list of
// records is serialised as the payload.
type CredentialRecord struct {
	// Title is the human-readable display name of the entry.
	Title string `json:"title"`

	// Username is the login identifier.
	Username string `json:"username,omitempty"`

	// Password is the secret credential associated with the username.
	Password string `json:"password,omitempty"`

	// URL is the resource the credentials apply to.
	URL string `json:"url,omitempty"`

	// Notes contains optional free-form remarks.
	Notes string `json:"notes,omitempty"`
}

// PasswordsOptions are the settings of the passwords application.
type PasswordsOptions struct {
	// ShowPasswords reveals passwords in the record list by default.
	ShowPasswords bool `json:"showPasswords"`

	// SortBy names the record field the list is sorted by.
	SortBy string `json:"sortBy,omitempty"`
}

// NoteOptions are the settings of the notes application.
type NoteOptions struct {
	// Monospace renders the note in a fixed-width font.
	Monospace bool `json:"monospace"`

	// WordWrap wraps long lines.
	WordWrap bool `json:"wordWrap"`
}

// DefaultPasswordsOptions is supplied for bare-payload envelopes.
func DefaultPasswordsOptions() PasswordsOptions {
	return PasswordsOptions{SortBy: "title"}
}

// DefaultNoteOptions is supplied for bare-payload envelopes.
func DefaultNoteOptions() NoteOptions {
	return NoteOptions{WordWrap: true}
}

// DecodeDefaults tells the decoder how to present the bare payloads of format
// versions up to 1.2, which carry neither options nor a payload shape.
type DecodeDefaults struct {
	// App selects how bare plaintext becomes a payload. Notes are always
	// text; other applications keep plaintext that is valid JSON.
	App AppType

	// Options is returned as the options of a bare payload. Empty means {}.
	Options json.RawMessage
}

// DecodeDefaultsFor returns the decode defaults of app.
func DecodeDefaultsFor(app AppType) DecodeDefaults {
	return DecodeDefaults{App: app, Options: DefaultOptionsFor(app)}
}

// DefaultOptionsFor returns the default options of app as JSON. Unknown
// applications get an empty object.
func DefaultOptionsFor(app AppType) json.RawMessage {
	var opts any = struct{}{}
	switch app {
	case AppPasswords:
		opts = DefaultPasswordsOptions()
	case AppNotes:
		opts = DefaultNoteOptions()
	}

	b, err := json.Marshal(opts)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}
