package crypto

import (
	"fmt"
	"io"
)

const (
	// IVSize is the length of every envelope IV.
	IVSize = 16

	// LegacySaltSize is the salt length legacy producers used.
	LegacySaltSize = 8
)

// NewIV reads a fresh IV from r. Callers pass crypto/rand.Reader outside of
// tests.
func NewIV(r io.Reader) ([]byte, error) {
	return readRandom(r, IVSize)
}

// NewSalt reads a fresh legacy PBKDF2 salt from r.
func NewSalt(r io.Reader) ([]byte, error) {
	return readRandom(r, LegacySaltSize)
}

func readRandom(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}
