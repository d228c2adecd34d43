package cmd

import "fmt"

// Remove deletes an entry by title and saves the vault.
func Remove(path, title string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	if !app.Prompter.Confirm(fmt.Sprintf("Remove entry %q?", title)) {
		fmt.Println("Aborted")
		return
	}
	if err := app.Service.RemoveEntry(title); err != nil {
		HandleError(err)
	}
	if err := app.Service.Save(); err != nil {
		HandleError(err)
	}
	fmt.Printf("Removed %s\n", title)
}
