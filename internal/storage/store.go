package storage

import "errors"

var (
	ErrNotFound   = errors.New("path not found")
	ErrNoMedium   = errors.New("storage medium not available")
	ErrWriteError = errors.New("storage write failed")
)

// Store abstracts the storage medium holding vault containers. All paths
// are slash-separated and rooted at the medium root.
type Store interface {
	Exists(path string) bool
	IsFile(path string) bool
	IsDirectory(path string) bool
	ReadBytes(path string) ([]byte, error)
	WriteBytes(path string, data []byte) error
	// List returns the entry names of a directory. Results may be served
	// from cache until Invalidate is called for the path.
	List(path string) ([]string, error)
	Invalidate(path string)
	Parent(path string) string
	EnsureDir(path string) error
}
