// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// currentSchemeName is logged for envelopes of version 1.4 and newer.
const currentSchemeName = "sha256-aes-cbc"

// currentScheme is the 1.4+ format: the SHA-256 digest of the UTF-16LE
// password bytes is imported directly as an AES-256 key for CBC mode.
//
// There is no salt and no iteration, and CBC gives confidentiality only; the
// hint is not authenticated. Existing documents depend on exactly this
// derivation, so it is kept as is.
type currentScheme struct{}

// NewCurrentScheme constructs the 1.4+ [Scheme].
func NewCurrentScheme() Scheme {
	return &currentScheme{}
}

// Name implements [Scheme].
func (s *currentScheme) Name() string {
	return currentSchemeName
}

// Derive implements [Scheme]. Salt and AData are ignored.
func (s *currentScheme) Derive(password string, params KeyParams) (Cipher, error) {
	if len(params.IV) != aes.BlockSize {
		return nil, ErrInvalidIV
	}

	key, err := PasswordDigest(password)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &cbcCipher{block: block, iv: params.IV}, nil
}

// PasswordDigest returns SHA-256 over the UTF-16 little-endian encoding of
// password, without a byte order mark.
func PasswordDigest(password string) ([]byte, error) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}

	sum := sha256.Sum256(encoded)
	return sum[:], nil
}

// cbcCipher is AES-CBC with PKCS#7 padding. Every call builds its own block
// mode, so one cbcCipher can serve concurrent chunk jobs.
type cbcCipher struct {
	block cipher.Block
	iv    []byte
}

// Encrypt implements [Cipher].
func (c *cbcCipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt implements [Cipher].
func (c *cbcCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, ciphertext)
	return pkcs7Unpad(out, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
