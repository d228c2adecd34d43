package cmd

import (
	"fmt"

	"github.com/illarion/pocketvault/internal/model"
)

// Add prompts for a new credential, stores it and saves the vault.
func Add(path string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	title, err := app.Prompter.PromptString("Title: ")
	if err != nil {
		HandleError(err)
	}
	username, err := app.Prompter.PromptString("Username: ")
	if err != nil {
		HandleError(err)
	}
	password, err := app.Prompter.PromptSecret("Password: ")
	if err != nil {
		HandleError(err)
	}
	url, err := app.Prompter.PromptString("URL (optional): ")
	if err != nil {
		HandleError(err)
	}
	notes, err := app.Prompter.PromptString("Notes (optional): ")
	if err != nil {
		HandleError(err)
	}
	category, err := app.Prompter.PromptString("Category (optional): ")
	if err != nil {
		HandleError(err)
	}

	entry := model.Entry{
		Title:    title,
		Username: username,
		Password: string(password.Bytes()),
		URL:      url,
		Notes:    notes,
		Category: category,
	}
	password.Wipe()

	if err := app.Service.AddEntry(entry); err != nil {
		HandleError(err)
	}
	if err := app.Service.Save(); err != nil {
		HandleError(err)
	}
	fmt.Printf("Added %s\n", entry.Title)
}
