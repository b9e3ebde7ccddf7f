package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-html/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerCodec struct {
	encodeFn func(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error)
	decodeFn func(ctx context.Context, password string, env models.Envelope, defaults models.DecodeDefaults) (models.DecodedPayload, error)

	encodeCalls int
	decodeCalls int
}

func (m *mockInnerCodec) Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error) {
	m.encodeCalls++
	if m.encodeFn != nil {
		return m.encodeFn(ctx, password, req)
	}
	return sampleEnvelope(), nil
}

func (m *mockInnerCodec) Decode(ctx context.Context, password string, env models.Envelope, defaults models.DecodeDefaults) (models.DecodedPayload, error) {
	m.decodeCalls++
	if m.decodeFn != nil {
		return m.decodeFn(ctx, password, env, defaults)
	}
	return models.DecodedPayload{Payload: json.RawMessage(`"ok"`)}, nil
}

// ─────────────────────────────────────────────
// Encode
// ─────────────────────────────────────────────

func TestCodecValidationService_Encode(t *testing.T) {
	tests := []struct {
		name    string
		app     models.AppType
		req     models.EncodeRequest
		wantErr error
	}{
		{
			name: "valid passwords request",
			app:  models.AppPasswords,
			req:  models.EncodeRequest{Plain: models.PlainPayload{Options: json.RawMessage(`{}`), Payload: json.RawMessage(`[]`)}},
		},
		{
			name: "absent options",
			app:  models.AppPasswords,
			req:  models.EncodeRequest{Plain: models.PlainPayload{Payload: json.RawMessage(`[]`)}},
		},
		{
			name:    "invalid payload",
			app:     models.AppPasswords,
			req:     models.EncodeRequest{Plain: models.PlainPayload{Payload: json.RawMessage(`[`)}},
			wantErr: ErrInvalidEncodeRequest,
		},
		{
			name:    "invalid options",
			app:     models.AppNotes,
			req:     models.EncodeRequest{Plain: models.PlainPayload{Options: json.RawMessage(`{a}`)}},
			wantErr: ErrInvalidEncodeRequest,
		},
		{
			name:    "attachment on passwords",
			app:     models.AppPasswords,
			req:     models.EncodeRequest{Attachment: &models.Attachment{FileName: "a"}},
			wantErr: ErrAttachmentNotSupported,
		},
		{
			name: "attachment on notes",
			app:  models.AppNotes,
			req:  models.EncodeRequest{Plain: models.PlainPayload{Payload: json.RawMessage(`"n"`)}, Attachment: &models.Attachment{FileName: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerCodec{}
			svc := NewCodecValidationService(tt.app).Wrap(inner)

			_, err := svc.Encode(context.Background(), "pw", tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, inner.encodeCalls, "inner codec must not be reached")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, inner.encodeCalls)
		})
	}
}

// ─────────────────────────────────────────────
// Decode
// ─────────────────────────────────────────────

func TestCodecValidationService_Decode_Valid(t *testing.T) {
	inner := &mockInnerCodec{}
	svc := NewCodecValidationService(models.AppPasswords).Wrap(inner)

	out, err := svc.Decode(context.Background(), "pw", sampleEnvelope(), models.DecodeDefaults{})
	require.NoError(t, err)
	assert.JSONEq(t, `"ok"`, string(out.Payload))
	assert.Equal(t, 1, inner.decodeCalls)
}

func TestCodecValidationService_Decode_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *models.Envelope)
		wantErr error
	}{
		{"no ciphertext", func(e *models.Envelope) { e.Ciphertext = "" }, ErrNoEnvelope},
		{"fixed field drift", func(e *models.Envelope) { e.Mode = "gcm" }, ErrAuthenticationOrPasswordFailure},
		{"drifted iterations", func(e *models.Envelope) { e.Iterations = 1000 }, ErrAuthenticationOrPasswordFailure},
		{"ciphertext without iv", func(e *models.Envelope) { e.IV = "" }, ErrAuthenticationOrPasswordFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerCodec{}
			svc := NewCodecValidationService(models.AppPasswords).Wrap(inner)

			env := sampleEnvelope()
			tt.mutate(&env)

			_, err := svc.Decode(context.Background(), "pw", env, models.DecodeDefaults{})
			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrSchemaViolation)
			assert.Zero(t, inner.decodeCalls)
		})
	}
}
