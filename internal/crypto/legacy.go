// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"github.com/pion/dtls/v2/pkg/crypto/ccm"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-pass-html/models"
)

// legacySchemeName is logged for envelopes older than 1.4.
const legacySchemeName = "pbkdf2-aes-ccm"

// legacyScheme reproduces the pre-1.4 format: PBKDF2-HMAC-SHA256 key
// stretching and AES-CCM with the hint as associated data.
type legacyScheme struct {
	iterations int
	keyLen     int // bytes
	tagLen     int // bytes
}

// NewLegacyScheme constructs the legacy [Scheme] from the fixed envelope
// fields (iteration count, key size and tag size, the latter two in bits).
func NewLegacyScheme(fixed models.FixedFields) Scheme {
	return &legacyScheme{
		iterations: fixed.Iterations,
		keyLen:     fixed.KeySize / 8,
		tagLen:     fixed.TagSize / 8,
	}
}

// Name implements [Scheme].
func (s *legacyScheme) Name() string {
	return legacySchemeName
}

// Derive implements [Scheme]. It runs PBKDF2 over the UTF-8 password bytes
// with the envelope salt.
func (s *legacyScheme) Derive(password string, params KeyParams) (Cipher, error) {
	if len(params.Salt) == 0 {
		return nil, ErrMissingSalt
	}
	if len(params.IV) < 15-minLengthFieldSize {
		return nil, ErrInvalidIV
	}

	key := pbkdf2.Key([]byte(password), params.Salt, s.iterations, s.keyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &ccmCipher{
		block:  block,
		iv:     params.IV,
		adata:  params.AData,
		tagLen: s.tagLen,
	}, nil
}

const (
	minLengthFieldSize = 2
	maxLengthFieldSize = 4
)

// ccmCipher is AES-CCM with a nonce cut from the front of the envelope IV.
// CCM trades nonce bytes for message-length bytes (L), so the nonce length
// depends on the message size: 13 bytes below 64 KiB, 12 below 16 MiB, 11
// above.
type ccmCipher struct {
	block  cipher.Block
	iv     []byte
	adata  []byte
	tagLen int
}

// lengthFieldSize returns L, the number of bytes CCM needs to encode a
// message of n bytes, clamped to [2, 4].
func lengthFieldSize(n int) int {
	l := minLengthFieldSize
	for l < maxLengthFieldSize && uint64(n)>>(8*uint(l)) != 0 {
		l++
	}
	return l
}

func (c *ccmCipher) aead(msgLen int) (cipher.AEAD, []byte, error) {
	nonceLen := 15 - lengthFieldSize(msgLen)
	aead, err := ccm.NewCCM(c.block, c.tagLen, nonceLen)
	if err != nil {
		return nil, nil, fmt.Errorf("create ccm: %w", err)
	}
	return aead, c.iv[:nonceLen], nil
}

// Encrypt implements [Cipher]. The output is ciphertext ‖ tag.
func (c *ccmCipher) Encrypt(plaintext []byte) ([]byte, error) {
	aead, nonce, err := c.aead(len(plaintext))
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, c.adata), nil
}

// Decrypt implements [Cipher].
func (c *ccmCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < c.tagLen {
		return nil, ErrInvalidCiphertext
	}

	aead, nonce, err := c.aead(len(ciphertext) - c.tagLen)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, c.adata)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return plaintext, nil
}
