package store

import (
	"sync"

	"github.com/MKhiriev/go-pass-html/models"
)

type envelopeSlot struct {
	mu  sync.RWMutex
	env models.Envelope
}

// NewEnvelopeSlot constructs an [EnvelopeSlot] holding the empty envelope.
func NewEnvelopeSlot() EnvelopeSlot {
	return &envelopeSlot{env: models.NewEmptyEnvelope()}
}

func (s *envelopeSlot) Get() models.Envelope {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.env.Clone()
}

func (s *envelopeSlot) Replace(env models.Envelope) {
	env = env.Clone()

	s.mu.Lock()
	s.env = env
	s.mu.Unlock()
}

func (s *envelopeSlot) Consume() models.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	consumed := s.env
	s.env = models.NewEmptyEnvelope()
	return consumed
}
