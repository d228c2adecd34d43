// Package keyring stores vault passphrases in the OS keyring, keyed by
// vault path. Opt-in: nothing is stored unless the operator asks.
package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "pocketvault"

// SavePassphrase stores a passphrase for the vault at path.
func SavePassphrase(vaultPath string, passphrase string) error {
	return keyring.Set(serviceName, vaultPath, passphrase)
}

// GetPassphrase retrieves the stored passphrase for the vault at path.
func GetPassphrase(vaultPath string) (string, error) {
	return keyring.Get(serviceName, vaultPath)
}

// DeletePassphrase removes the stored passphrase for the vault at path.
func DeletePassphrase(vaultPath string) error {
	return keyring.Delete(serviceName, vaultPath)
}

// HasPassphrase checks whether a passphrase is stored for the vault at path.
func HasPassphrase(vaultPath string) bool {
	_, err := keyring.Get(serviceName, vaultPath)
	return err == nil
}
