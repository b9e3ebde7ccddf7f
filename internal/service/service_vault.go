package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-pass-html/internal/document"
	"github.com/MKhiriev/go-pass-html/internal/logger"
	"github.com/MKhiriev/go-pass-html/internal/store"
	"github.com/MKhiriev/go-pass-html/internal/utils"
	"github.com/MKhiriev/go-pass-html/models"
)

// vaultService serialises codec operations against one envelope slot. The
// slot is written only after an operation has fully succeeded, so a failed
// encode, decode or import leaves the previous envelope in place.
type vaultService struct {
	// mu is held for the whole of every operation that may write the slot.
	mu sync.Mutex

	app      models.AppType
	slot     store.EnvelopeSlot
	codec    CodecService
	importer ImportService
	ids      utils.IDGenerator

	logger *logger.Logger
}

func NewVaultService(app models.AppType, slot store.EnvelopeSlot, codec CodecService, importer ImportService, ids utils.IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		app:      app,
		slot:     slot,
		codec:    codec,
		importer: importer,
		ids:      ids,
		logger:   logger,
	}
}

func (v *vaultService) Load(ctx context.Context, text string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, log := v.begin(ctx, "load")

	if _, err := document.ExtractEnvelope(text); errors.Is(err, document.ErrMarkerNotFound) {
		v.slot.Replace(models.NewEmptyEnvelope())
		log.Debug().Msg("document has no envelope")
		return nil
	}

	env, err := v.importer.ImportFromText(ctx, text, v.app)
	if err != nil {
		log.Warn().Err(err).Msg("own document rejected")
		return err
	}

	v.slot.Replace(env)
	return nil
}

func (v *vaultService) Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, log := v.begin(ctx, "encode")

	env, err := v.codec.Encode(ctx, password, req)
	if err != nil {
		log.Warn().Err(err).Msg("encode failed")
		return models.Envelope{}, err
	}

	v.slot.Replace(env)
	return env.Clone(), nil
}

func (v *vaultService) Decode(ctx context.Context, password string) (models.DecodedPayload, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, log := v.begin(ctx, "decode")

	env := v.slot.Get()
	if !env.HasCiphertext() {
		return models.DecodedPayload{}, ErrNoEnvelope
	}

	out, err := v.codec.Decode(ctx, password, env, models.DecodeDefaultsFor(v.app))
	if err != nil {
		log.Warn().Err(err).Msg("decode failed")
		return models.DecodedPayload{}, err
	}

	v.slot.Consume()
	return out, nil
}

func (v *vaultService) ImportFromText(ctx context.Context, text string) (models.Envelope, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, log := v.begin(ctx, "import")

	env, err := v.importer.ImportFromText(ctx, text, v.app)
	if err != nil {
		log.Warn().Err(err).Msg("import failed")
		return models.Envelope{}, err
	}

	v.slot.Replace(env)
	return env.Clone(), nil
}

func (v *vaultService) HasEnvelope() bool {
	return v.slot.Get().HasCiphertext()
}

func (v *vaultService) Hint() string {
	return v.slot.Get().Hint
}

func (v *vaultService) Current() models.Envelope {
	return v.slot.Get()
}

func (v *vaultService) AppType() models.AppType {
	return v.app
}

// begin tags ctx and the returned logger with a fresh trace id.
func (v *vaultService) begin(ctx context.Context, op string) (context.Context, *logger.Logger) {
	traceID := v.ids.Generate()
	log := v.logger.WithTraceID(traceID)
	log.Debug().Str("op", op).Str("app", v.app.String()).Msg("operation started")

	return utils.WithTraceID(ctx, traceID), log
}
