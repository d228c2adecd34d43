// Package crypto provides the cryptographic engine for pocketvault.
//
// Encryption uses AES-256-GCM with:
//   - 32-byte key derived from the passphrase via PBKDF2
//   - 12-byte random nonce per seal operation
//   - 16-byte detached authentication tag
//
// Key derivation uses PBKDF2-HMAC-SHA256 with:
//   - 16-byte random salt (stored in the container header)
//   - 10,000 iterations, a fixed format constant shared with the device
//     firmware; changing it breaks compatibility with existing vaults
//
// Salt and nonce generation goes through an EntropySource so the
// hardware-RNG enable/disable discipline of the device can be expressed.
// The host default draws from crypto/rand.
//
// Memory safety:
//   - Wrap passphrases and plaintext in Secret, or use ClearBytes()
//   - Envelope.Wipe() zeroes all envelope material
package crypto
