// Package config loads the pocketvault configuration file. The file holds
// defaults for the delivery channel and storage locations; values saved in
// the settings store override it at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the TOML configuration file layout.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Keyboard KeyboardConfig `toml:"keyboard"`
}

type StorageConfig struct {
	// Root is the host directory standing in for the device storage medium.
	Root string `toml:"root"`
	// VaultDir is the default vault directory on the medium.
	VaultDir string `toml:"vault_dir"`
	// BackupDir is the host directory for container backups.
	BackupDir string `toml:"backup_dir"`
	// SettingsFile is the settings database location.
	SettingsFile string `toml:"settings_file"`
}

type KeyboardConfig struct {
	WirelessEnabled bool   `toml:"wireless_enabled"`
	Layout          string `toml:"layout"`
	DeviceName      string `toml:"device_name"`
	ChunkSize       int    `toml:"chunk_size"`
	ChunkDelayMs    int    `toml:"chunk_delay_ms"`
	// WiredDevice is the HID gadget device for the wired transport.
	// Empty means keystrokes go to stdout (demo mode).
	WiredDevice string `toml:"wired_device"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".pocketvault")
	return Config{
		Storage: StorageConfig{
			Root:         filepath.Join(base, "media"),
			VaultDir:     "/vaults",
			BackupDir:    filepath.Join(base, "backups"),
			SettingsFile: filepath.Join(base, "settings.db"),
		},
		Keyboard: KeyboardConfig{
			WirelessEnabled: false,
			Layout:          "en_US",
			DeviceName:      "Password Vault",
			ChunkSize:       64,
			ChunkDelayMs:    100,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pocketvault", "config.toml")
}

// Load reads the config file at path, filling unset fields from Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
