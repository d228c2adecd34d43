package vault

import "github.com/illarion/pocketvault/internal/crypto"

// Session holds the active vault credentials. The path and the passphrase
// change only together: Set replaces both, Clear wipes both. Locked state is
// represented by an empty path, nothing else.
type Session struct {
	path       string
	passphrase *crypto.Secret
}

// NewSession returns a locked session.
func NewSession() *Session {
	return &Session{}
}

// Set installs a new path/passphrase pair, wiping any previous passphrase.
// The session takes ownership of the secret.
func (s *Session) Set(path string, passphrase *crypto.Secret) {
	s.passphrase.Wipe()
	s.path = path
	s.passphrase = passphrase
}

// Clear wipes the passphrase and forgets the path.
func (s *Session) Clear() {
	s.passphrase.Wipe()
	s.passphrase = nil
	s.path = ""
}

// Unlocked reports whether a vault is currently open.
func (s *Session) Unlocked() bool {
	return s.path != ""
}

// Path returns the open vault's path, or "" when locked.
func (s *Session) Path() string {
	return s.path
}

// Passphrase returns the held secret. The session retains ownership.
func (s *Session) Passphrase() *crypto.Secret {
	return s.passphrase
}
