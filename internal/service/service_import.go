package service

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-pass-html/internal/document"
	"github.com/MKhiriev/go-pass-html/internal/logger"
	"github.com/MKhiriev/go-pass-html/internal/utils"
	"github.com/MKhiriev/go-pass-html/internal/validators"
	"github.com/MKhiriev/go-pass-html/models"
)

type importService struct {
	logger *logger.Logger
}

func NewImportService(logger *logger.Logger) ImportService {
	return &importService{logger: logger}
}

// ImportFromText checks, in order, the app-type marker, the presence and
// shape of the envelope literal and finally the envelope schema of expected.
func (s *importService) ImportFromText(ctx context.Context, text string, expected models.AppType) (models.Envelope, error) {
	log := s.logger
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log = log.WithTraceID(traceID)
	}

	app, err := document.ExtractAppType(text)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrAppTypeUndetermined, err)
	}
	if app != expected {
		log.Info().Str("found", app.String()).Str("expected", expected.String()).Msg("import rejected")
		return models.Envelope{}, fmt.Errorf("%w: document belongs to %q, expected %q", ErrAppTypeMismatch, app, expected)
	}

	raw, err := document.ExtractEnvelope(text)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return models.Envelope{}, fmt.Errorf("%w: envelope is not a JSON object", ErrMalformedEnvelope)
	}

	fields, err := validators.SchemaFor(expected).Validate(raw)
	if err != nil {
		log.Info().Err(err).Msg("import rejected")
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	env, err := fields.Envelope()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	log.Info().
		Stringer("version", env.Version).
		Bool("ciphertext", env.HasCiphertext()).
		Int("unknown_fields", len(env.Extra)).
		Msg("envelope imported")

	return env, nil
}
