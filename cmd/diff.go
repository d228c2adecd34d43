package cmd

import "fmt"

// Diff shows unsaved changes between the vault on disk and the credentials
// held in memory. The output contains secrets; it goes to the terminal
// only.
func Diff(path string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	diff, err := app.Service.Diff()
	if err != nil {
		HandleError(err)
	}
	if diff == "" {
		fmt.Println("No changes")
		return
	}
	fmt.Print(diff)
}
