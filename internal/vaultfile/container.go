package vaultfile

import (
	"bytes"
	"errors"

	"github.com/illarion/pocketvault/internal/crypto"
)

var (
	ErrBadMagic  = errors.New("invalid vault magic")
	ErrTruncated = errors.New("vault container truncated")
)

// Layout describes the container geometry. The sizes are shared with the
// crypto engine so the two can never disagree on where a field lives.
type Layout struct {
	Magic     []byte
	SaltSize  int
	NonceSize int
	TagSize   int
}

// DefaultLayout returns the version-2 vault layout used by the device
// firmware and its host tools.
func DefaultLayout() Layout {
	return Layout{
		Magic:     []byte("VLT2"),
		SaltSize:  crypto.SaltSize,
		NonceSize: crypto.NonceSize,
		TagSize:   crypto.TagSize,
	}
}

func (l Layout) saltOffset() int   { return len(l.Magic) }
func (l Layout) nonceOffset() int  { return l.saltOffset() + l.SaltSize }
func (l Layout) tagOffset() int    { return l.nonceOffset() + l.NonceSize }
func (l Layout) cipherOffset() int { return l.tagOffset() + l.TagSize }

// HeaderSize is the minimum valid container length: magic plus all fixed
// fields, with zero-length ciphertext.
func (l Layout) HeaderSize() int { return l.cipherOffset() }

// HasValidMagic reports whether raw starts with the layout's magic marker.
// Used as the structural pre-check before any passphrase is requested.
func HasValidMagic(l Layout, raw []byte) bool {
	if len(raw) < len(l.Magic) {
		return false
	}
	return bytes.Equal(raw[:len(l.Magic)], l.Magic)
}

// Container is a decoded on-disk vault: a validated raw byte sequence with
// bounds-checked field accessors. It holds no ownership beyond its buffer;
// callers must Wipe it once consumed.
type Container struct {
	layout Layout
	raw    []byte
}

// Decode validates magic and minimum length before exposing accessors.
func Decode(l Layout, raw []byte) (*Container, error) {
	if !HasValidMagic(l, raw) {
		return nil, ErrBadMagic
	}
	if len(raw) < l.HeaderSize() {
		return nil, ErrTruncated
	}
	return &Container{layout: l, raw: raw}, nil
}

// Bytes returns the total serialized form.
func (c *Container) Bytes() []byte { return c.raw }

func (c *Container) field(off, size int) []byte {
	if len(c.raw) < off+size {
		return nil
	}
	return c.raw[off : off+size]
}

// Salt returns the salt field, or nil if the container is truncated there.
func (c *Container) Salt() []byte {
	return c.field(c.layout.saltOffset(), c.layout.SaltSize)
}

// Nonce returns the nonce field, or nil if truncated there.
func (c *Container) Nonce() []byte {
	return c.field(c.layout.nonceOffset(), c.layout.NonceSize)
}

// Tag returns the authentication tag field, or nil if truncated there.
func (c *Container) Tag() []byte {
	return c.field(c.layout.tagOffset(), c.layout.TagSize)
}

// Ciphertext returns the variable-length tail. A container of exactly
// header length has no retrievable ciphertext and yields nil.
func (c *Container) Ciphertext() []byte {
	off := c.layout.cipherOffset()
	if len(c.raw) <= off {
		return nil
	}
	return c.raw[off:]
}

// Wipe zeroes the raw container bytes.
func (c *Container) Wipe() {
	crypto.ClearBytes(c.raw)
	c.raw = nil
}
