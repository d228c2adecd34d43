// Package vault implements the vault lifecycle: creating containers,
// discovering and opening them, saving changes and locking.
//
// The package ties the lower layers together:
//
//   - internal/crypto seals and opens payloads
//   - internal/vaultfile encodes and decodes containers
//   - internal/storage reads and writes the medium
//   - internal/settings remembers the last-used directory
//   - internal/model shapes the plaintext payload
//
// All operator interaction goes through the Prompter interface, so the
// lifecycle itself never touches a terminal. The unlocked state lives in a
// Session that callers own explicitly; there are no package-level
// singletons.
package vault
