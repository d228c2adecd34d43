package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/pocketvault/internal/keyboard"
	"github.com/illarion/pocketvault/internal/model"
)

// Type delivers one field of an entry through the emulated keyboard.
func Type(path, title, field string, chunked bool) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	entry, err := app.Service.FindEntry(title)
	if err != nil {
		HandleError(err)
	}

	value, err := fieldValue(entry, field)
	if err != nil {
		HandleError(err)
	}
	if value == "" {
		fmt.Fprintf(os.Stderr, "Entry %q has no %s\n", title, field)
		os.Exit(1)
	}

	channel := app.Channel()
	var result keyboard.Result
	if chunked {
		result = channel.SendChunked(value)
	} else {
		result = channel.Send(value)
	}

	if !result.Complete() {
		fmt.Fprintf(os.Stderr, "Delivery incomplete: %d of %d keystrokes sent\n", result.Units, result.Total)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Sent %s of %q via %s keyboard\n", field, title, result.Transport)
}

func fieldValue(e *model.Entry, field string) (string, error) {
	switch field {
	case "password":
		return e.Password, nil
	case "username":
		return e.Username, nil
	case "url":
		return e.URL, nil
	case "notes":
		return e.Notes, nil
	default:
		return "", fmt.Errorf("unknown field %q (password, username, url, notes)", field)
	}
}
