package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-html/models"
)

// EnvelopeValidator implements the Validator interface for envelopes of one
// application type.
//
// It accepts raw JSON ([]byte, json.RawMessage, string) as well as typed
// envelopes, which are marshalled first so that preserved unknown fields go
// through the same checks as on import.
type EnvelopeValidator struct {
	schema *EnvelopeSchema
}

// NewEnvelopeValidator constructs an EnvelopeValidator for app and returns it
// as the Validator interface.
func NewEnvelopeValidator(app models.AppType) Validator {
	return &EnvelopeValidator{schema: SchemaFor(app)}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// the variable-field checks to the named subset; fixed fields are always
// checked. Returns ErrUnsupportedType for any other input and ErrUnknownField
// when a requested field is not part of the schema.
func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if _, ok := v.schema.variableField(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var only []string
	if len(fields) > 0 {
		only = fields
	}

	raw, err := toRawEnvelope(obj)
	if err != nil {
		return err
	}

	_, err = v.schema.validate(raw, only)
	return err
}

func toRawEnvelope(obj any) ([]byte, error) {
	switch value := obj.(type) {
	case []byte:
		return value, nil
	case json.RawMessage:
		return value, nil
	case string:
		return []byte(value), nil
	case models.Envelope:
		return json.Marshal(value)
	case *models.Envelope:
		if value == nil {
			return nil, ErrUnsupportedType
		}
		return json.Marshal(*value)
	default:
		return nil, ErrUnsupportedType
	}
}
