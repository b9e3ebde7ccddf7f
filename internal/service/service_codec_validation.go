package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-html/internal/validators"
	"github.com/MKhiriev/go-pass-html/models"
)

type CodecValidationService struct {
	inner     CodecService
	app       models.AppType
	validator validators.Validator
}

// NewCodecValidationService returns a wrapper that checks requests and
// envelopes of app before they reach the codec.
func NewCodecValidationService(app models.AppType) CodecServiceWrapper {
	return &CodecValidationService{
		app:       app,
		validator: validators.NewEnvelopeValidator(app),
	}
}

func (v *CodecValidationService) Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error) {
	// request should consist of:
	//  - Options, a JSON value (null when absent)
	//  - Payload, a JSON value (null when absent)
	//  - (not always) Attachment, notes only
	if len(req.Plain.Options) > 0 && !json.Valid(req.Plain.Options) {
		return models.Envelope{}, fmt.Errorf("%w: options are not valid JSON", ErrInvalidEncodeRequest)
	}
	if len(req.Plain.Payload) > 0 && !json.Valid(req.Plain.Payload) {
		return models.Envelope{}, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidEncodeRequest)
	}
	if req.Attachment != nil && !v.app.SupportsAttachments() {
		return models.Envelope{}, fmt.Errorf("%w: %q", ErrAttachmentNotSupported, v.app)
	}

	return v.inner.Encode(ctx, password, req)
}

func (v *CodecValidationService) Decode(ctx context.Context, password string, env models.Envelope, defaults models.DecodeDefaults) (models.DecodedPayload, error) {
	if !env.HasCiphertext() {
		return models.DecodedPayload{}, ErrNoEnvelope
	}

	// an envelope that cannot be ours is a decrypt failure like any other
	if err := v.validator.Validate(ctx, env); err != nil {
		return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
	}

	return v.inner.Decode(ctx, password, env, defaults)
}

func (v *CodecValidationService) Wrap(wrapped CodecService) CodecService {
	v.inner = wrapped
	return v
}
