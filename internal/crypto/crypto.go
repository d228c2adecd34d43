package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltSize  = 16 // Salt size in bytes
	KeySize   = 32 // AES-256 key size
	NonceSize = 12 // GCM nonce size
	TagSize   = 16 // GCM authentication tag size

	// Iterations is the fixed PBKDF2 iteration count. It is part of the
	// vault format shared with the device firmware; changing it makes
	// existing vaults unreadable, so it is deliberately not configurable.
	Iterations = 10000
)

var (
	// ErrAuthFailed means the authentication tag did not verify: either the
	// passphrase is wrong or the container has been tampered with. The two
	// cases are indistinguishable and no plaintext is ever returned.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrPlatform wraps failures of the underlying primitives or the
	// entropy source. There is no safe recovery: key material cannot be
	// trusted, so callers must abort the whole operation.
	ErrPlatform = errors.New("crypto platform failure")
)

// Envelope holds the material produced by one seal operation. The caller
// owns the buffers and must Wipe them once consumed.
type Envelope struct {
	Salt       []byte
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// Wipe zeroes all envelope buffers.
func (e *Envelope) Wipe() {
	ClearBytes(e.Salt)
	ClearBytes(e.Nonce)
	ClearBytes(e.Tag)
	ClearBytes(e.Ciphertext)
}

// Engine performs key derivation and authenticated encryption for vault
// payloads. It keeps no state beyond its entropy source.
type Engine struct {
	entropy EntropySource
}

// NewEngine creates an engine drawing randomness from src. A nil src uses
// the system entropy source.
func NewEngine(src EntropySource) *Engine {
	if src == nil {
		src = SystemEntropy()
	}
	return &Engine{entropy: src}
}

// DeriveKey derives a symmetric key from a passphrase and salt. The result
// is defined only by (passphrase, salt); the caller must ClearBytes the key
// immediately after use.
func (e *Engine) DeriveKey(passphrase, salt []byte, keySize int) []byte {
	return pbkdf2.Key(passphrase, salt, Iterations, keySize, sha256.New)
}

// Seal encrypts plaintext under a key derived from passphrase and a fresh
// salt. The nonce is generated per call and never caller-supplied, so nonce
// reuse under one key cannot happen. The tag is returned detached.
func (e *Engine) Seal(plaintext, passphrase []byte) (*Envelope, error) {
	salt, err := e.randomBytes(SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := e.randomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	key := e.DeriveKey(passphrase, salt, KeySize)
	defer ClearBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Seal appends the tag to the ciphertext; the container format keeps
	// it as a separate header field, so split it off.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	env := &Envelope{
		Salt:       salt,
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}
	return env, nil
}

// Open derives the key from the envelope's salt and decrypts. A tag that
// does not verify yields ErrAuthFailed and no plaintext, partial or
// otherwise.
func (e *Engine) Open(env *Envelope, passphrase []byte) ([]byte, error) {
	if len(env.Salt) != SaltSize || len(env.Nonce) != NonceSize || len(env.Tag) != TagSize {
		return nil, ErrAuthFailed
	}

	key := e.DeriveKey(passphrase, env.Salt, KeySize)
	defer ClearBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := aead.Open(nil, env.Nonce, sealed, nil)
	ClearBytes(sealed)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	return aead, nil
}

// randomBytes primes the entropy source, draws n bytes and releases the
// source again.
func (e *Engine) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	e.entropy.Enable()
	defer e.entropy.Disable()
	if err := e.entropy.Fill(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	return b, nil
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeCompare performs a constant-time comparison of two byte slices
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
