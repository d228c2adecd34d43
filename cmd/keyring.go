package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/pocketvault/internal/keyring"
)

// Keyring manages passphrases stored in the OS keyring, one per vault
// path. Storing is opt-in and verified against the vault first.
func Keyring(op, vaultPath string) {
	app := NewApp()
	defer app.Close()

	switch op {
	case "save":
		passphrase, err := app.Prompter.PromptSecret("Enter passphrase: ")
		if err != nil {
			HandleError(err)
		}
		// Keep a copy for the keyring; OpenWith consumes the secret.
		plain := string(passphrase.Bytes())

		if err := app.Service.OpenWith(vaultPath, passphrase); err != nil {
			HandleError(err)
		}
		if err := keyring.SavePassphrase(vaultPath, plain); err != nil {
			HandleError(err)
		}
		fmt.Printf("Passphrase for %s stored in OS keyring\n", vaultPath)

	case "delete":
		if err := keyring.DeletePassphrase(vaultPath); err != nil {
			HandleError(err)
		}
		fmt.Printf("Passphrase for %s removed from OS keyring\n", vaultPath)

	case "status":
		if keyring.HasPassphrase(vaultPath) {
			fmt.Printf("Passphrase for %s is stored\n", vaultPath)
		} else {
			fmt.Printf("No passphrase stored for %s\n", vaultPath)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring operation: %s\n", op)
		os.Exit(1)
	}
}
