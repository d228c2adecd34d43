package vaultfile

import (
	"errors"
	"fmt"

	"github.com/illarion/pocketvault/internal/crypto"
)

// ErrIncomplete is returned by Build when a fixed header field is missing
// or has the wrong size. The builder fails closed rather than emitting a
// zero-padded guess.
var ErrIncomplete = errors.New("vault container incomplete")

// Builder accumulates the fields of a new container and emits a validated
// byte sequence only once all fixed fields are present. Setters copy their
// input, so callers may wipe their own buffers immediately. Setters are
// idempotent and order-independent.
type Builder struct {
	layout     Layout
	salt       []byte
	nonce      []byte
	tag        []byte
	ciphertext []byte
}

// NewBuilder creates a builder for the given layout.
func NewBuilder(l Layout) *Builder {
	return &Builder{layout: l}
}

func (b *Builder) SetSalt(salt []byte) *Builder {
	b.salt = append(b.salt[:0], salt...)
	return b
}

func (b *Builder) SetNonce(nonce []byte) *Builder {
	b.nonce = append(b.nonce[:0], nonce...)
	return b
}

func (b *Builder) SetTag(tag []byte) *Builder {
	b.tag = append(b.tag[:0], tag...)
	return b
}

// SetCiphertext sets the variable-length tail. Zero-length ciphertext is
// valid; a nil argument clears a previously set value.
func (b *Builder) SetCiphertext(ciphertext []byte) *Builder {
	b.ciphertext = append(b.ciphertext[:0], ciphertext...)
	return b
}

// SetEnvelope copies all four fields from a sealed envelope.
func (b *Builder) SetEnvelope(env *crypto.Envelope) *Builder {
	return b.SetSalt(env.Salt).SetNonce(env.Nonce).SetTag(env.Tag).SetCiphertext(env.Ciphertext)
}

// Build emits the complete serialized container, or fails if any fixed
// field is absent or sized wrong.
func (b *Builder) Build() ([]byte, error) {
	if len(b.salt) != b.layout.SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrIncomplete, len(b.salt), b.layout.SaltSize)
	}
	if len(b.nonce) != b.layout.NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrIncomplete, len(b.nonce), b.layout.NonceSize)
	}
	if len(b.tag) != b.layout.TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes, want %d", ErrIncomplete, len(b.tag), b.layout.TagSize)
	}

	raw := make([]byte, 0, b.layout.HeaderSize()+len(b.ciphertext))
	raw = append(raw, b.layout.Magic...)
	raw = append(raw, b.salt...)
	raw = append(raw, b.nonce...)
	raw = append(raw, b.tag...)
	raw = append(raw, b.ciphertext...)
	return raw, nil
}

// Wipe zeroes every field buffer held by the builder.
func (b *Builder) Wipe() {
	crypto.ClearBytes(b.salt)
	crypto.ClearBytes(b.nonce)
	crypto.ClearBytes(b.tag)
	crypto.ClearBytes(b.ciphertext)
	b.salt, b.nonce, b.tag, b.ciphertext = nil, nil, nil, nil
}
