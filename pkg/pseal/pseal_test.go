package pseal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	s, err := NewSealer("unit-test-secret")
	require.NoError(t, err)

	plaintext := []byte(`{"provider":"gemini","geminiKey":"abc"}`)
	blob, err := s.Seal(plaintext)
	require.NoError(t, err)

	// The stored blob must be a sealed envelope, not the plaintext.
	var env Envelope
	require.NoError(t, json.Unmarshal(blob, &env))
	assert.Equal(t, VersionSealed, env.Version)
	assert.NotContains(t, string(env.Payload), "geminiKey")

	opened, err := s.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestOpenPlainEnvelope(t *testing.T) {
	s, err := NewSealer("unit-test-secret")
	require.NoError(t, err)

	payload := []byte(`{"provider":"openai"}`)
	blob, err := json.Marshal(Envelope{Version: VersionPlain, Payload: payload})
	require.NoError(t, err)

	opened, err := s.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, payload, opened)
}

func TestOpenLegacyBlob(t *testing.T) {
	s, err := NewSealer("unit-test-secret")
	require.NoError(t, err)

	// Pre-envelope data has no version tag and passes through unchanged.
	legacy := []byte(`{"provider":"gemini","geminiKey":"old"}`)
	opened, err := s.Open(legacy)
	require.NoError(t, err)
	assert.Equal(t, legacy, opened)
}

func TestOpenRejectsGarbage(t *testing.T) {
	s, err := NewSealer("unit-test-secret")
	require.NoError(t, err)

	_, err = s.Open([]byte("not json at all"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open([]byte(`{"version":2,"payload":"QUFB"}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open([]byte(`{"version":9,"payload":null}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestOpenWrongKey(t *testing.T) {
	a, err := NewSealer("secret-a")
	require.NoError(t, err)
	b, err := NewSealer("secret-b")
	require.NoError(t, err)

	blob, err := a.Seal([]byte(`{"provider":"gemini"}`))
	require.NoError(t, err)

	_, err = b.Open(blob)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewSealerEmptySecret(t *testing.T) {
	_, err := NewSealer("")
	assert.Error(t, err)
}
