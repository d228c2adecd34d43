package cmd

import "fmt"

// Open verifies that a vault opens with the given passphrase and remembers
// its directory for later discovery. With no path it browses the medium.
func Open(path string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)
	fmt.Printf("Opened %s: %d entries, %d categories\n",
		app.Service.Session().Path(), len(app.Service.Entries()), len(app.Service.Categories()))
}
