// Package vaultfile implements the on-disk vault container format.
//
// Layout, all offsets computed from the configured field sizes:
//
//	[ magic "VLT2" | salt | nonce | tag | ciphertext... ]
//
// The package does byte-layout marshaling only; it performs no
// cryptography and trusts the caller regarding field semantics. Every
// accessor bounds-checks against the raw length and returns nil instead
// of faulting on a truncated container.
package vaultfile
