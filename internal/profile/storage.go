package profile

import (
	"os"
	"strconv"
)

// Source identifies which backend a store was loaded from.
type Source string

const (
	FileSource    Source = "file"
	KeyringSource Source = "keyring"
)

// EnvKeyring opts in to the system keyring backend when set to a true
// value.
const EnvKeyring = "TRIEVE_KEYRING"

// Storage persists the profile store. Load returns an empty store, not
// an error, when nothing has been persisted yet.
type Storage interface {
	Load() (*Store, error)
	Save(*Store) error
	Source() Source
}

// GetStorage selects the backend. The YAML file is the default so the
// store stays inspectable and editable by hand; the system keyring is
// opt-in via TRIEVE_KEYRING.
func GetStorage() Storage {
	if enabled, _ := strconv.ParseBool(os.Getenv(EnvKeyring)); enabled {
		return NewKeyringStorage()
	}
	return NewFileStorage()
}

// FileStorage implements Storage with a YAML file under the trieve
// config directory.
type FileStorage struct{}

func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

func (f *FileStorage) Load() (*Store, error) {
	return loadStoreFromFile()
}

func (f *FileStorage) Save(st *Store) error {
	return saveStoreToFile(st)
}

func (f *FileStorage) Source() Source {
	return FileSource
}

// KeyringStorage implements Storage using the system keyring.
type KeyringStorage struct{}

func NewKeyringStorage() *KeyringStorage {
	return &KeyringStorage{}
}

func (k *KeyringStorage) Load() (*Store, error) {
	return loadStoreFromKeyring()
}

func (k *KeyringStorage) Save(st *Store) error {
	return saveStoreInKeyring(st)
}

func (k *KeyringStorage) Source() Source {
	return KeyringSource
}
