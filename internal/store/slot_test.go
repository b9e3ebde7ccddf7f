package store

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pass-html/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeSlot_StartsEmpty(t *testing.T) {
	s := NewEnvelopeSlot()
	require.NotNil(t, s)

	env := s.Get()
	assert.False(t, env.HasCiphertext())
	assert.Equal(t, models.CurrentVersion, env.Version)
	assert.Equal(t, models.DefaultFixedFields(), env.FixedFields)
}

func TestEnvelopeSlot_Get_ReturnsDeepCopy(t *testing.T) {
	s := NewEnvelopeSlot()

	env := models.NewEmptyEnvelope()
	env.IV = "aXY="
	env.Ciphertext = "Y3Q="
	env.Slices = []string{"YQ=="}
	env.Extra = map[string]json.RawMessage{"future": json.RawMessage(`1`)}
	s.Replace(env)

	got := s.Get()
	got.Hint = "mutated"
	got.Slices[0] = "mutated"
	got.Extra["future"] = json.RawMessage(`2`)

	again := s.Get()
	assert.Empty(t, again.Hint)
	assert.Equal(t, []string{"YQ=="}, again.Slices)
	assert.JSONEq(t, `1`, string(again.Extra["future"]))
}

func TestEnvelopeSlot_Replace_CopiesInput(t *testing.T) {
	s := NewEnvelopeSlot()

	env := models.NewEmptyEnvelope()
	env.Slices = []string{"YQ=="}
	s.Replace(env)

	env.Slices[0] = "mutated"
	assert.Equal(t, []string{"YQ=="}, s.Get().Slices)
}

func TestEnvelopeSlot_Consume(t *testing.T) {
	s := NewEnvelopeSlot()

	env := models.NewEmptyEnvelope()
	env.IV = "aXY="
	env.Ciphertext = "Y3Q="
	env.Hint = "hint"
	s.Replace(env)

	consumed := s.Consume()
	assert.Equal(t, "Y3Q=", consumed.Ciphertext)
	assert.Equal(t, "hint", consumed.Hint)

	after := s.Get()
	assert.False(t, after.HasCiphertext())
	assert.Empty(t, after.Hint)
}

func TestEnvelopeSlot_ConcurrentAccess(t *testing.T) {
	s := NewEnvelopeSlot()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			env := models.NewEmptyEnvelope()
			env.IV = "aXY="
			env.Ciphertext = "Y3Q="
			s.Replace(env)
		}()
		go func() {
			defer wg.Done()
			env := s.Get()
			// either the empty envelope or a complete one, never half of each
			assert.Equal(t, env.IV != "", env.HasCiphertext())
		}()
	}
	wg.Wait()
}
