package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore is a Store backed by a host directory standing in for the
// device's storage medium.
type FileStore struct {
	root  string
	cache map[string][]string
}

// NewFileStore mounts root as the medium root. The directory must exist;
// a missing root is reported as an absent medium.
func NewFileStore(root string) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMedium, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoMedium, root)
	}
	return &FileStore{
		root:  abs,
		cache: make(map[string][]string),
	}, nil
}

// hostPath maps a medium path onto the host filesystem, confined to root.
func (s *FileStore) hostPath(p string) string {
	clean := path.Clean("/" + strings.TrimPrefix(p, "/"))
	return filepath.Join(s.root, filepath.FromSlash(clean))
}

func (s *FileStore) Exists(p string) bool {
	_, err := os.Stat(s.hostPath(p))
	return err == nil
}

func (s *FileStore) IsFile(p string) bool {
	info, err := os.Stat(s.hostPath(p))
	return err == nil && info.Mode().IsRegular()
}

func (s *FileStore) IsDirectory(p string) bool {
	info, err := os.Stat(s.hostPath(p))
	return err == nil && info.IsDir()
}

func (s *FileStore) ReadBytes(p string) ([]byte, error) {
	data, err := os.ReadFile(s.hostPath(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// WriteBytes writes data atomically: temp file in the target directory,
// fsync, then rename over the destination.
func (s *FileStore) WriteBytes(p string, data []byte) error {
	target := s.hostPath(p)

	tmp, err := os.CreateTemp(filepath.Dir(target), ".vault-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	return nil
}

// List returns the sorted entry names of a directory, from cache when a
// previous listing is still valid.
func (s *FileStore) List(p string) ([]string, error) {
	key := path.Clean("/" + strings.TrimPrefix(p, "/"))
	if names, ok := s.cache[key]; ok {
		return names, nil
	}

	entries, err := os.ReadDir(s.hostPath(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("failed to list %s: %w", p, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	s.cache[key] = names
	return names, nil
}

// Invalidate drops the cached listing for a directory. Called after any
// write that changes the directory's contents.
func (s *FileStore) Invalidate(p string) {
	delete(s.cache, path.Clean("/"+strings.TrimPrefix(p, "/")))
}

// Parent returns the containing directory of a medium path; the root is
// its own parent.
func (s *FileStore) Parent(p string) string {
	parent := path.Dir(path.Clean("/" + strings.TrimPrefix(p, "/")))
	if parent == "" || parent == "." {
		return "/"
	}
	return parent
}

func (s *FileStore) EnsureDir(p string) error {
	if err := os.MkdirAll(s.hostPath(p), 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	return nil
}
