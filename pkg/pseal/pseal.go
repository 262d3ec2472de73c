// Package pseal wraps persisted blobs in a versioned envelope with optional
// AES-GCM sealing. The sealing key ships with the application, so this is
// obfuscation against casual inspection, not real confidentiality.
package pseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Envelope versions. VersionPlain carries the payload as-is, VersionSealed
// carries nonce||ciphertext produced by Seal.
const (
	VersionPlain  = 1
	VersionSealed = 2
)

var ErrMalformed = errors.New("pseal: malformed blob")

// Envelope is the persisted wrapper. The loader dispatches on Version
// instead of inferring the format by trial parsing.
type Envelope struct {
	Version int    `json:"version" bson:"version"`
	Payload []byte `json:"payload" bson:"payload"`
}

// Sealer seals and opens envelope blobs with a key derived from the
// application-embedded secret.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from secret and builds an AES-GCM sealer.
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, errors.New("pseal: empty secret")
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("pseal: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("pseal: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext and returns a marshaled VersionSealed envelope.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("pseal: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)
	return json.Marshal(Envelope{Version: VersionSealed, Payload: sealed})
}

// Open recovers the plaintext payload from blob. Envelopes are dispatched on
// their version tag; a blob without a version tag is treated as a legacy
// plain payload and returned unchanged.
func (s *Sealer) Open(blob []byte) ([]byte, error) {
	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch env.Version {
	case 0:
		// Pre-envelope data: the blob itself is the payload.
		return blob, nil
	case VersionPlain:
		return env.Payload, nil
	case VersionSealed:
		if len(env.Payload) < s.aead.NonceSize() {
			return nil, ErrMalformed
		}
		nonce, ciphertext := env.Payload[:s.aead.NonceSize()], env.Payload[s.aead.NonceSize():]
		plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return plaintext, nil
	default:
		return nil, fmt.Errorf("%w: unknown version %d", ErrMalformed, env.Version)
	}
}
