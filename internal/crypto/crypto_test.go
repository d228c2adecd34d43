package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	engine := NewEngine(nil)
	plaintext := []byte(`{"entries":[],"categories":[]}`)
	passphrase := []byte("abc123")

	env, err := engine.Seal(plaintext, passphrase)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if len(env.Salt) != SaltSize {
		t.Errorf("Expected %d-byte salt, got %d", SaltSize, len(env.Salt))
	}
	if len(env.Nonce) != NonceSize {
		t.Errorf("Expected %d-byte nonce, got %d", NonceSize, len(env.Nonce))
	}
	if len(env.Tag) != TagSize {
		t.Errorf("Expected %d-byte tag, got %d", TagSize, len(env.Tag))
	}

	got, err := engine.Open(env, passphrase)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestOpenWrongPassphrase(t *testing.T) {
	engine := NewEngine(nil)

	env, err := engine.Seal([]byte("secret payload"), []byte("correct"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if _, err := engine.Open(env, []byte("wrong")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
}

func TestOpenTamperDetection(t *testing.T) {
	engine := NewEngine(nil)
	passphrase := []byte("abc123")

	env, err := engine.Seal([]byte("secret payload"), passphrase)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	// Flipping any single bit in ciphertext or tag must fail verification.
	for _, field := range []struct {
		name string
		buf  []byte
	}{
		{"ciphertext", env.Ciphertext},
		{"tag", env.Tag},
	} {
		for i := range field.buf {
			field.buf[i] ^= 0x01
			if _, err := engine.Open(env, passphrase); !errors.Is(err, ErrAuthFailed) {
				t.Fatalf("Flipped bit in %s byte %d: expected ErrAuthFailed, got %v", field.name, i, err)
			}
			field.buf[i] ^= 0x01
		}
	}

	// Restored envelope opens again.
	if _, err := engine.Open(env, passphrase); err != nil {
		t.Errorf("Open after restore failed: %v", err)
	}
}

func TestSealFreshSaltAndNonce(t *testing.T) {
	engine := NewEngine(nil)
	plaintext := []byte("same payload")
	passphrase := []byte("same passphrase")

	first, err := engine.Seal(plaintext, passphrase)
	if err != nil {
		t.Fatalf("First seal failed: %v", err)
	}
	second, err := engine.Seal(plaintext, passphrase)
	if err != nil {
		t.Fatalf("Second seal failed: %v", err)
	}

	if bytes.Equal(first.Salt, second.Salt) {
		t.Error("Salt reused across seal operations")
	}
	if bytes.Equal(first.Nonce, second.Nonce) {
		t.Error("Nonce reused across seal operations")
	}
}

func TestOpenMalformedEnvelope(t *testing.T) {
	engine := NewEngine(nil)

	env := &Envelope{
		Salt:  make([]byte, SaltSize-1),
		Nonce: make([]byte, NonceSize),
		Tag:   make([]byte, TagSize),
	}
	if _, err := engine.Open(env, []byte("pass")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed for short salt, got %v", err)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	salt := make([]byte, SaltSize)

	k1 := engine.DeriveKey([]byte("pass"), salt, KeySize)
	k2 := engine.DeriveKey([]byte("pass"), salt, KeySize)
	if !bytes.Equal(k1, k2) {
		t.Error("Same passphrase and salt produced different keys")
	}

	k3 := engine.DeriveKey([]byte("other"), salt, KeySize)
	if bytes.Equal(k1, k3) {
		t.Error("Different passphrases produced the same key")
	}
}

type failingEntropy struct{}

func (failingEntropy) Enable()           {}
func (failingEntropy) Disable()          {}
func (failingEntropy) Fill([]byte) error { return errors.New("rng offline") }

func TestSealEntropyFailureIsPlatformError(t *testing.T) {
	engine := NewEngine(failingEntropy{})
	if _, err := engine.Seal([]byte("data"), []byte("pass")); !errors.Is(err, ErrPlatform) {
		t.Errorf("Expected ErrPlatform, got %v", err)
	}
}

func TestSecretWipe(t *testing.T) {
	buf := []byte("hunter2")
	s := NewSecret(buf)

	if s.IsEmpty() {
		t.Fatal("Secret should not be empty")
	}
	s.Wipe()

	if !s.IsEmpty() {
		t.Error("Secret should be empty after Wipe")
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("Byte %d not zeroed", i)
		}
	}
}

func TestSecretEqual(t *testing.T) {
	a := SecretFromString("match")
	b := SecretFromString("match")
	c := SecretFromString("nope")

	if !a.Equal(b) {
		t.Error("Identical secrets should compare equal")
	}
	if a.Equal(c) {
		t.Error("Different secrets should not compare equal")
	}
}
