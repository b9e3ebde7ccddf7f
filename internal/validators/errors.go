package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrNotAnObject is returned when the candidate is not a JSON object.
	ErrNotAnObject = errors.New("envelope is not a JSON object")

	// ErrIncompatibleCypherSettings is returned when a fixed field is present
	// with a value other than the one the schema expects.
	ErrIncompatibleCypherSettings = errors.New("incompatible cypher settings")

	// ErrMissingOrInvalidField is returned, wrapped with the field name, when
	// a mandatory field is absent or any field has the wrong type.
	ErrMissingOrInvalidField = errors.New("missing or invalid field")

	// ErrCiphertextWithoutIV is returned when ciphertext is present but the
	// IV is empty.
	ErrCiphertextWithoutIV = errors.New("ciphertext present without iv")
)
