// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-pass-html/models"
)

// FieldType is the runtime type tag of a variable envelope field.
type FieldType int

const (
	// TypeNumber accepts any JSON number.
	TypeNumber FieldType = iota + 1

	// TypeString accepts any JSON string, including "".
	TypeString

	// TypeStringArray accepts a JSON array whose elements are all strings.
	TypeStringArray
)

func (t FieldType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeStringArray:
		return "string array"
	default:
		return "unknown"
	}
}

// matches reports whether value carries the JSON type t describes.
func (t FieldType) matches(value gjson.Result) bool {
	switch t {
	case TypeNumber:
		return value.Type == gjson.Number
	case TypeString:
		return value.Type == gjson.String
	case TypeStringArray:
		if !value.IsArray() {
			return false
		}
		ok := true
		value.ForEach(func(_, item gjson.Result) bool {
			ok = item.Type == gjson.String
			return ok
		})
		return ok
	default:
		return false
	}
}

// FixedField is an identity field whose value is constant per schema version.
type FixedField struct {
	Name string

	// Expected is the value the schema requires, as parsed JSON.
	Expected gjson.Result
}

// FieldSpec describes one variable envelope field.
type FieldSpec struct {
	Name        string
	Description string
	Type        FieldType
	Mandatory   bool
}

// baseVariableFields are shared by every application.
var baseVariableFields = []FieldSpec{
	{Name: models.FieldVersion, Description: "format version number", Type: TypeNumber},
	{Name: models.FieldIV, Description: "base64 initialisation vector", Type: TypeString, Mandatory: true},
	{Name: models.FieldSalt, Description: "base64 key derivation salt (legacy only)", Type: TypeString},
	{Name: models.FieldHint, Description: "plaintext password hint", Type: TypeString},
	{Name: models.FieldCiphertext, Description: "base64 ciphertext", Type: TypeString},
}

// AttachmentFields extend the schema of applications that store a file.
var AttachmentFields = []FieldSpec{
	{Name: models.FieldFileName, Description: "base64 encrypted attachment filename", Type: TypeString},
	{Name: models.FieldSlices, Description: "base64 encrypted attachment chunks in offset order", Type: TypeStringArray},
}

// defaultFixedFields derives the fixed-field table from
// [models.DefaultFixedFields] so the schema and the encoder cannot drift.
func defaultFixedFields() []FixedField {
	raw, err := json.Marshal(models.DefaultFixedFields())
	if err != nil {
		panic(fmt.Sprintf("marshal fixed fields: %v", err))
	}

	var fields []FixedField
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, FixedField{Name: key.Str, Expected: value})
		return true
	})
	return fields
}

// EnvelopeSchema is the source of truth for what a valid envelope looks like
// at the current software version. It is immutable after construction.
type EnvelopeSchema struct {
	fixed    []FixedField
	variable []FieldSpec
}

// NewEnvelopeSchema returns the base schema extended with extensions.
func NewEnvelopeSchema(extensions ...FieldSpec) *EnvelopeSchema {
	variable := make([]FieldSpec, 0, len(baseVariableFields)+len(extensions))
	variable = append(variable, baseVariableFields...)
	variable = append(variable, extensions...)

	return &EnvelopeSchema{
		fixed:    defaultFixedFields(),
		variable: variable,
	}
}

// SchemaFor returns the schema of the given application.
func SchemaFor(app models.AppType) *EnvelopeSchema {
	if app.SupportsAttachments() {
		return NewEnvelopeSchema(AttachmentFields...)
	}
	return NewEnvelopeSchema()
}

// FixedFields returns a copy of the fixed-field table.
func (s *EnvelopeSchema) FixedFields() []FixedField {
	return slices.Clone(s.fixed)
}

// VariableFields returns a copy of the variable-field table.
func (s *EnvelopeSchema) VariableFields() []FieldSpec {
	return slices.Clone(s.variable)
}

func (s *EnvelopeSchema) isKnown(name string) bool {
	for _, f := range s.fixed {
		if f.Name == name {
			return true
		}
	}
	for _, f := range s.variable {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (s *EnvelopeSchema) variableField(name string) (FieldSpec, bool) {
	for _, f := range s.variable {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ValidatedFields is the output of a successful validation: every schema
// field the candidate defined (fixed fields filled from the schema when
// absent) plus all unknown fields, untouched.
type ValidatedFields map[string]json.RawMessage

// Envelope converts the validated fields into the typed envelope.
func (f ValidatedFields) Envelope() (models.Envelope, error) {
	raw, err := json.Marshal(map[string]json.RawMessage(f))
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal validated fields: %w", err)
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrMissingOrInvalidField, err)
	}
	return env, nil
}

// Validate checks raw against the schema. It has no side effects.
//
// Fixed fields the candidate defines must equal the schema value
// ([ErrIncompatibleCypherSettings]); absent ones are tolerated and filled in.
// Mandatory variable fields must be present with the declared type and
// optional ones must have the declared type when present
// ([ErrMissingOrInvalidField]). Fields the schema does not know are copied
// without inspection.
func (s *EnvelopeSchema) Validate(raw []byte) (ValidatedFields, error) {
	return s.validate(raw, nil)
}

// validate is [EnvelopeSchema.Validate] restricted to the variable fields in
// only. A nil only checks every variable field.
func (s *EnvelopeSchema) validate(raw []byte, only []string) (ValidatedFields, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrNotAnObject
	}
	candidate := gjson.ParseBytes(raw)
	if !candidate.IsObject() {
		return nil, ErrNotAnObject
	}

	out := make(ValidatedFields)

	for _, f := range s.fixed {
		value := candidate.Get(escapePath(f.Name))
		if !value.Exists() || value.Type == gjson.Null {
			out[f.Name] = json.RawMessage(f.Expected.Raw)
			continue
		}
		if !sameScalar(value, f.Expected) {
			return nil, fmt.Errorf("%w: %s is %s, want %s", ErrIncompatibleCypherSettings, f.Name, value.Raw, f.Expected.Raw)
		}
		out[f.Name] = json.RawMessage(value.Raw)
	}

	for _, f := range s.variable {
		value := candidate.Get(escapePath(f.Name))
		present := value.Exists() && value.Type != gjson.Null

		if only != nil && !slices.Contains(only, f.Name) {
			if present {
				out[f.Name] = json.RawMessage(value.Raw)
			}
			continue
		}

		switch {
		case !present && f.Mandatory:
			return nil, fmt.Errorf("%w: %s", ErrMissingOrInvalidField, f.Name)
		case !present:
			continue
		case !f.Type.matches(value):
			return nil, fmt.Errorf("%w: %s must be a %s", ErrMissingOrInvalidField, f.Name, f.Type)
		}
		out[f.Name] = json.RawMessage(value.Raw)
	}

	candidate.ForEach(func(key, value gjson.Result) bool {
		if !s.isKnown(key.Str) {
			out[key.Str] = json.RawMessage(value.Raw)
		}
		return true
	})

	if err := checkIVPairing(candidate); err != nil {
		return nil, err
	}

	return out, nil
}

// checkIVPairing enforces that ciphertext never appears without an IV.
func checkIVPairing(candidate gjson.Result) error {
	ct := candidate.Get(models.FieldCiphertext)
	iv := candidate.Get(models.FieldIV)
	if ct.Type == gjson.String && ct.Str != "" && (iv.Type != gjson.String || iv.Str == "") {
		return ErrCiphertextWithoutIV
	}
	return nil
}

// sameScalar compares two JSON scalars by type and value.
func sameScalar(a, b gjson.Result) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case gjson.String:
		return a.Str == b.Str
	case gjson.Number:
		return a.Num == b.Num
	default:
		return a.Raw == b.Raw
	}
}

// escapePath escapes the gjson path metacharacters in a plain key.
func escapePath(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}
