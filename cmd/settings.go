package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/pocketvault/internal/settings"
)

var settingKeys = map[string]settings.Key{
	"layout":      settings.KeyKeyboardLayout,
	"device-name": settings.KeyDeviceName,
	"wireless":    settings.KeyWirelessEnabled,
	"chunk-size":  settings.KeyChunkSize,
}

var settingOrder = []string{"layout", "device-name", "wireless", "chunk-size"}

// Settings shows or changes persistent device settings. Values set here
// override the config file defaults.
func Settings(key, value string) {
	app := NewApp()
	defer app.Close()

	if key == "" {
		for _, name := range settingOrder {
			v, err := app.Settings.GetString(settingKeys[name])
			if err != nil {
				HandleError(err)
			}
			if v == "" {
				v = "(default)"
			}
			fmt.Printf("%-12s %s\n", name, v)
		}
		return
	}

	k, ok := settingKeys[key]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown setting: %s\n", key)
		os.Exit(1)
	}
	if k == settings.KeyWirelessEnabled {
		switch value {
		case "1", "true", "on", "yes":
			value = "1"
		case "0", "false", "off", "no":
			value = "0"
		default:
			fmt.Fprintf(os.Stderr, "Invalid value for wireless: %s (use on/off)\n", value)
			os.Exit(1)
		}
	}
	if err := app.Settings.SaveString(k, value); err != nil {
		HandleError(err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
}
