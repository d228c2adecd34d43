package settings

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveGetString(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveString(KeyLastUsedVaultDir, "/vaults"); err != nil {
		t.Fatalf("SaveString failed: %v", err)
	}

	got, err := store.GetString(KeyLastUsedVaultDir)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "/vaults" {
		t.Errorf("Expected /vaults, got %q", got)
	}
}

func TestGetUnsetReturnsEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.GetString(KeyDeviceName)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty value for unset key, got %q", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveString(KeyKeyboardLayout, "en_US"); err != nil {
		t.Fatalf("SaveString failed: %v", err)
	}
	if err := store.SaveString(KeyKeyboardLayout, "fr_FR"); err != nil {
		t.Fatalf("SaveString failed: %v", err)
	}

	got, err := store.GetString(KeyKeyboardLayout)
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "fr_FR" {
		t.Errorf("Expected fr_FR, got %q", got)
	}
}

func TestUnknownKey(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetString(Key(999)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
	if err := store.SaveString(Key(999), "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	store := openTestStore(t)

	enabled, err := store.GetBool(KeyWirelessEnabled)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if enabled {
		t.Error("Unset bool should be false")
	}

	if err := store.SaveBool(KeyWirelessEnabled, true); err != nil {
		t.Fatalf("SaveBool failed: %v", err)
	}
	enabled, err = store.GetBool(KeyWirelessEnabled)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !enabled {
		t.Error("Expected true after SaveBool(true)")
	}
}
