package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/illarion/pocketvault/internal/config"
	"github.com/illarion/pocketvault/internal/crypto"
	"github.com/illarion/pocketvault/internal/keyboard"
	"github.com/illarion/pocketvault/internal/keyring"
	"github.com/illarion/pocketvault/internal/settings"
	"github.com/illarion/pocketvault/internal/storage"
	"github.com/illarion/pocketvault/internal/vault"
	"github.com/illarion/pocketvault/internal/vaultfile"
)

// App bundles the collaborators every command needs.
type App struct {
	Config   config.Config
	Store    *storage.FileStore
	Settings *settings.Store
	Prompter vault.Prompter
	Service  *vault.Service
}

// NewApp loads the configuration and opens the stores. Exits on failure.
func NewApp() *App {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		HandleError(err)
	}

	if err := os.MkdirAll(cfg.Storage.Root, 0700); err != nil {
		HandleError(fmt.Errorf("failed to prepare storage root: %w", err))
	}
	store, err := storage.NewFileStore(cfg.Storage.Root)
	if err != nil {
		HandleError(err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SettingsFile), 0700); err != nil {
		HandleError(fmt.Errorf("failed to prepare settings directory: %w", err))
	}
	st, err := settings.Open(cfg.Storage.SettingsFile)
	if err != nil {
		HandleError(err)
	}

	prompter := vault.NewTerminalPrompter()
	service := vault.NewService(store, st, nil, prompter, vault.NewSession(), cfg.Storage.VaultDir)

	return &App{
		Config:   cfg,
		Store:    store,
		Settings: st,
		Prompter: prompter,
		Service:  service,
	}
}

// Close releases the stores and wipes the session.
func (a *App) Close() {
	a.Service.Lock()
	a.Settings.Close()
}

// OpenVault opens the vault at path, consulting the OS keyring before
// prompting. An empty path starts interactive discovery.
func (a *App) OpenVault(path string) {
	if path != "" {
		if stored, err := keyring.GetPassphrase(path); err == nil {
			if err := a.Service.OpenWith(path, crypto.SecretFromString(stored)); err == nil {
				return
			}
			// Stored passphrase no longer opens the vault; fall through
			// to the prompt.
		}
	}
	if err := a.Service.Open(path); err != nil {
		HandleError(err)
	}
}

// Channel builds the credential delivery channel. Settings-store values
// override the config file.
func (a *App) Channel() *keyboard.Channel {
	kc := a.Config.Keyboard

	channelCfg := keyboard.Config{
		WirelessEnabled: kc.WirelessEnabled,
		Layout:          kc.Layout,
		DeviceName:      kc.DeviceName,
		ChunkSize:       kc.ChunkSize,
		ChunkDelay:      time.Duration(kc.ChunkDelayMs) * time.Millisecond,
	}
	if layout, err := a.Settings.GetString(settings.KeyKeyboardLayout); err == nil && layout != "" {
		channelCfg.Layout = layout
	}
	if name, err := a.Settings.GetString(settings.KeyDeviceName); err == nil && name != "" {
		channelCfg.DeviceName = name
	}
	if raw, err := a.Settings.GetString(settings.KeyWirelessEnabled); err == nil && raw != "" {
		channelCfg.WirelessEnabled = raw == "1"
	}
	if raw, err := a.Settings.GetString(settings.KeyChunkSize); err == nil && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			channelCfg.ChunkSize = n
		}
	}

	var wired keyboard.Transport
	if kc.WiredDevice != "" {
		t, err := keyboard.OpenDeviceTransport(kc.WiredDevice)
		if err != nil {
			HandleError(err)
		}
		wired = t
	} else {
		wired = keyboard.NewWriterTransport(os.Stdout)
	}

	// No wireless transport exists on the host side; the channel degrades
	// to the wired path on its own.
	return keyboard.NewChannel(channelCfg, nil, wired)
}

// HandleError reports common errors consistently and exits.
func HandleError(err error) {
	switch {
	case errors.Is(err, vault.ErrAborted):
		fmt.Fprintln(os.Stderr, "Aborted")
	case errors.Is(err, vaultfile.ErrBadMagic), errors.Is(err, vaultfile.ErrTruncated):
		fmt.Fprintln(os.Stderr, "Error: not a valid vault file")
	case errors.Is(err, crypto.ErrAuthFailed):
		fmt.Fprintln(os.Stderr, "Error: invalid password")
	case errors.Is(err, vault.ErrLocked):
		fmt.Fprintln(os.Stderr, "Error: no vault is open")
	case errors.Is(err, vault.ErrVaultGone):
		fmt.Fprintln(os.Stderr, "Error: vault file is missing or damaged, refusing to save")
	case errors.Is(err, storage.ErrNoMedium):
		fmt.Fprintln(os.Stderr, "Error: storage medium not available")
	case errors.Is(err, vault.ErrEntryNotFound):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
