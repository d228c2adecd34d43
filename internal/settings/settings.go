package settings

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var settingsBucket = []byte("settings")

// ErrUnknownKey is returned for a Key outside the enumerated set.
var ErrUnknownKey = errors.New("unknown settings key")

// Key identifies one setting. The set is closed; adding a setting means
// adding a constant and its name here.
type Key int

const (
	KeyLastUsedVaultDir Key = iota
	KeyKeyboardLayout
	KeyWirelessEnabled
	KeyDeviceName
	KeyChunkSize
)

var keyNames = map[Key][]byte{
	KeyLastUsedVaultDir: []byte("last_used_vault_dir"),
	KeyKeyboardLayout:   []byte("keyboard_layout"),
	KeyWirelessEnabled:  []byte("wireless_enabled"),
	KeyDeviceName:       []byte("device_name"),
	KeyChunkSize:        []byte("chunk_size"),
}

// Store is a BBolt-backed settings store.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the settings database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize settings database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetString returns the stored value for key, or "" when the setting has
// never been saved.
func (s *Store) GetString(key Key) (string, error) {
	name, ok := keyNames[key]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownKey, key)
	}

	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(settingsBucket)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}
		if data := bucket.Get(name); data != nil {
			value = string(data)
		}
		return nil
	})
	return value, err
}

// SaveString stores value under key.
func (s *Store) SaveString(key Key, value string) error {
	name, ok := keyNames[key]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKey, key)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(settingsBucket)
		return bucket.Put(name, []byte(value))
	})
}

// GetBool reads a boolean setting stored as "1"/"0". Absent means false.
func (s *Store) GetBool(key Key) (bool, error) {
	value, err := s.GetString(key)
	if err != nil {
		return false, err
	}
	return value == "1", nil
}

// SaveBool stores a boolean setting as "1"/"0".
func (s *Store) SaveBool(key Key, value bool) error {
	if value {
		return s.SaveString(key, "1")
	}
	return s.SaveString(key, "0")
}
