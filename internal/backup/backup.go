// Package backup keeps spare copies of vault containers, mirroring the
// device's internal-flash backup area. Backups are whole containers named
// after the vault; a backup that fails the magic pre-check is reported as
// corrupt rather than handed back to the caller.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/illarion/pocketvault/internal/vaultfile"
)

const backupExt = ".vault"

var (
	ErrNotFound = errors.New("backup not found")
	ErrCorrupt  = errors.New("backup is not a valid vault container")
)

// Service stores container backups under a base directory.
type Service struct {
	dir    string
	layout vaultfile.Layout
}

// New creates a backup service rooted at dir.
func New(dir string, layout vaultfile.Layout) *Service {
	return &Service{dir: dir, layout: layout}
}

func (s *Service) path(name string) string {
	return filepath.Join(s.dir, name+backupExt)
}

// Write stores data as the backup for the named vault, replacing any
// previous copy. The data must be a structurally valid container.
func (s *Service) Write(name string, data []byte) error {
	if !vaultfile.HasValidMagic(s.layout, data) {
		return ErrCorrupt
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Read returns the backup container for the named vault.
func (s *Service) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	if !vaultfile.HasValidMagic(s.layout, data) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, name)
	}
	return data, nil
}

// Exists reports whether a backup is stored for the named vault.
func (s *Service) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Delete removes the backup for the named vault.
func (s *Service) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// List returns the names of all stored backups, sorted.
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), backupExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), backupExt))
	}
	sort.Strings(names)
	return names, nil
}
