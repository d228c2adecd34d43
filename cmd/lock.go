package cmd

import (
	"fmt"

	"github.com/illarion/pocketvault/internal/settings"
)

// Lock forgets the remembered vault directory so the next discovery starts
// from scratch. Passphrases held by the OS keyring are managed separately
// by the keyring command.
func Lock() {
	app := NewApp()
	defer app.Close()

	if err := app.Settings.SaveString(settings.KeyLastUsedVaultDir, ""); err != nil {
		HandleError(err)
	}
	fmt.Println("Locked: remembered vault location cleared")
}
