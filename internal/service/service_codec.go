package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-html/internal/crypto"
	"github.com/MKhiriev/go-pass-html/internal/logger"
	"github.com/MKhiriev/go-pass-html/internal/utils"
	"github.com/MKhiriev/go-pass-html/internal/workers"
	"github.com/MKhiriev/go-pass-html/models"
)

// ChunkSize is the number of attachment bytes encrypted into one slice.
const ChunkSize = 1024

var b64 = base64.StdEncoding

type codecService struct {
	selector crypto.Selector
	random   io.Reader
	pool     workers.Runner

	logger *logger.Logger
}

// NewCodecService constructs a CodecService. random is the only source of
// IVs; pool runs attachment chunk jobs.
func NewCodecService(selector crypto.Selector, random io.Reader, pool workers.Runner, logger *logger.Logger) CodecService {
	return &codecService{
		selector: selector,
		random:   random,
		pool:     pool,
		logger:   logger,
	}
}

func (c *codecService) Encode(ctx context.Context, password string, req models.EncodeRequest) (models.Envelope, error) {
	if password == "" {
		return models.Envelope{}, ErrEmptyPassword
	}

	log := c.opLogger(ctx)

	iv, err := crypto.NewIV(c.random)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	scheme := c.selector.Current()
	cipher, err := scheme.Derive(password, crypto.KeyParams{IV: iv, AData: []byte(req.Hint)})
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: derive key: %w", ErrEncryptionFailed, err)
	}

	plain, err := json.Marshal(req.Plain)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvalidEncodeRequest, err)
	}

	ct, err := cipher.Encrypt(plain)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: payload: %w", ErrEncryptionFailed, err)
	}

	env := models.NewEmptyEnvelope()
	env.IV = b64.EncodeToString(iv)
	env.Hint = req.Hint
	env.Ciphertext = b64.EncodeToString(ct)

	if req.Attachment != nil {
		fn, err := cipher.Encrypt([]byte(req.Attachment.FileName))
		if err != nil {
			return models.Envelope{}, fmt.Errorf("%w: file name: %w", ErrEncryptionFailed, err)
		}

		slices, err := c.encryptChunks(ctx, cipher, req.Attachment.Data)
		if err != nil {
			return models.Envelope{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
		}

		env.FileName = b64.EncodeToString(fn)
		env.Slices = slices
	}

	log.Info().
		Str("scheme", scheme.Name()).
		Stringer("version", env.Version).
		Bool("attachment", req.Attachment != nil).
		Int("slices", len(env.Slices)).
		Msg("envelope encoded")

	return env, nil
}

func (c *codecService) Decode(ctx context.Context, password string, env models.Envelope, defaults models.DecodeDefaults) (models.DecodedPayload, error) {
	if !env.HasCiphertext() {
		return models.DecodedPayload{}, ErrNoEnvelope
	}

	log := c.opLogger(ctx)
	scheme := c.selector.ForVersion(env.Version)

	cipher, err := c.deriveForEnvelope(scheme, password, env)
	if err != nil {
		log.Debug().Err(err).Str("scheme", scheme.Name()).Msg("key derivation failed")
		return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
	}

	plain, err := decryptBase64(cipher, env.Ciphertext)
	if err != nil {
		log.Debug().Err(err).Str("scheme", scheme.Name()).Msg("payload decryption failed")
		return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
	}

	out := models.DecodedPayload{
		Hint:    env.Hint,
		Version: env.Version,
	}

	if env.Version.HasBarePayload() {
		out.Payload = barePayload(defaults.App, plain)
		out.Options = defaults.Options
		if len(out.Options) == 0 {
			out.Options = json.RawMessage(`{}`)
		}
	} else {
		var p models.PlainPayload
		if err = json.Unmarshal(plain, &p); err != nil {
			// a wrong key under CBC can still yield valid padding
			log.Debug().Err(err).Msg("decrypted payload is not a payload object")
			return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
		}
		out.Payload = p.Payload
		out.Options = p.Options
	}

	if env.HasAttachment() {
		// fn is optional next to slices
		var fn []byte
		if env.FileName != "" {
			if fn, err = decryptBase64(cipher, env.FileName); err != nil {
				log.Debug().Err(err).Msg("file name decryption failed")
				return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
			}
		}

		data, err := c.decryptChunks(ctx, cipher, env.Slices)
		if err != nil {
			log.Debug().Err(err).Msg("attachment decryption failed")
			return models.DecodedPayload{}, ErrAuthenticationOrPasswordFailure
		}

		out.Attachment = &models.Attachment{FileName: string(fn), Data: data}
	}

	log.Info().
		Str("scheme", scheme.Name()).
		Stringer("version", env.Version).
		Bool("attachment", out.Attachment != nil).
		Msg("envelope decoded")

	return out, nil
}

func (c *codecService) deriveForEnvelope(scheme crypto.Scheme, password string, env models.Envelope) (crypto.Cipher, error) {
	iv, err := b64.DecodeString(env.IV)
	if err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}

	var salt []byte
	if env.Salt != "" {
		if salt, err = b64.DecodeString(env.Salt); err != nil {
			return nil, fmt.Errorf("salt: %w", err)
		}
	}

	return scheme.Derive(password, crypto.KeyParams{IV: iv, Salt: salt, AData: []byte(env.Hint)})
}

// encryptChunks splits data into ChunkSize pieces and encrypts them on the
// pool. Slice i always holds chunk i, whatever order the jobs finish in.
func (c *codecService) encryptChunks(ctx context.Context, cipher crypto.Cipher, data []byte) ([]string, error) {
	chunks := splitChunks(data, ChunkSize)
	out := make([]string, len(chunks))

	// started crypto runs to completion even if the caller gives up
	err := c.pool.Run(context.WithoutCancel(ctx), len(chunks), func(_ context.Context, i int) error {
		ct, err := cipher.Encrypt(chunks[i])
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = b64.EncodeToString(ct)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *codecService) decryptChunks(ctx context.Context, cipher crypto.Cipher, slices []string) ([]byte, error) {
	plain := make([][]byte, len(slices))

	err := c.pool.Run(context.WithoutCancel(ctx), len(slices), func(_ context.Context, i int) error {
		pt, err := decryptBase64(cipher, slices[i])
		if err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		plain[i] = pt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bytes.Join(plain, nil), nil
}

func (c *codecService) opLogger(ctx context.Context) *logger.Logger {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return c.logger.WithTraceID(traceID)
	}
	return c.logger
}

func decryptBase64(cipher crypto.Cipher, s string) ([]byte, error) {
	ct, err := b64.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return cipher.Decrypt(ct)
}

// splitChunks returns consecutive size-byte views of data; the last one may be
// shorter. Empty data yields no chunks.
func splitChunks(data []byte, size int) [][]byte {
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for off := 0; off < len(data); off += size {
		end := min(off+size, len(data))
		chunks = append(chunks, data[off:end])
	}
	return chunks
}

// barePayload quotes plaintext as a JSON string. Outside the notes app,
// plaintext that already is JSON is kept as is.
func barePayload(app models.AppType, plain []byte) json.RawMessage {
	if app != models.AppNotes && json.Valid(plain) {
		return json.RawMessage(bytes.TrimSpace(plain))
	}

	quoted, err := json.Marshal(string(plain))
	if err != nil {
		return json.RawMessage(`""`)
	}
	return quoted
}
