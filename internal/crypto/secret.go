package crypto

// Secret owns a sensitive byte buffer (passphrase, derived key, decrypted
// plaintext) and guarantees it can be zeroed in one place. Every operation
// that touches such a buffer must Wipe it on all exit paths; holding the
// buffer in a Secret keeps that contract from being forgotten at new call
// sites.
type Secret struct {
	b []byte
}

// NewSecret wraps b. The Secret takes ownership; the caller must not keep
// using the slice directly.
func NewSecret(b []byte) *Secret {
	return &Secret{b: b}
}

// SecretFromString copies s into a wipeable buffer. The original string
// cannot be zeroed, so prefer byte-slice input where possible.
func SecretFromString(s string) *Secret {
	b := make([]byte, len(s))
	copy(b, s)
	return &Secret{b: b}
}

// Bytes exposes the underlying buffer. The Secret retains ownership.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// IsEmpty reports whether no secret material is held.
func (s *Secret) IsEmpty() bool {
	return s == nil || len(s.b) == 0
}

// Equal compares two secrets in constant time.
func (s *Secret) Equal(other *Secret) bool {
	return ConstantTimeCompare(s.Bytes(), other.Bytes())
}

// Clone returns an independent copy with its own buffer.
func (s *Secret) Clone() *Secret {
	if s == nil {
		return nil
	}
	b := make([]byte, len(s.b))
	copy(b, s.b)
	return &Secret{b: b}
}

// Wipe zeroes the buffer and drops it.
func (s *Secret) Wipe() {
	if s == nil {
		return
	}
	ClearBytes(s.b)
	s.b = nil
}
