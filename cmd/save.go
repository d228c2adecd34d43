package cmd

import "fmt"

// Save re-encrypts the vault in place with a fresh salt and nonce.
func Save(path string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	if err := app.Service.Save(); err != nil {
		HandleError(err)
	}
	fmt.Printf("Re-encrypted %s\n", app.Service.Session().Path())
}
