package profile

import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "trieve-cli"
	storeKey       = "profiles"
)

func saveStoreInKeyring(st *Store) error {
	if err := st.Validate(); err != nil {
		return err
	}
	storeJson, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return keyring.Set(keyringService, storeKey, string(storeJson))
}

func loadStoreFromKeyring() (*Store, error) {
	storeJson, err := keyring.Get(keyringService, storeKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return &Store{}, nil
		}
		return nil, err
	}

	// decode the store
	var st Store
	if err := json.Unmarshal([]byte(storeJson), &st); err != nil {
		// this is an unlikely state. Remove the entry from the keyring and
		// allow the user to log in again.
		if err := keyring.Delete(keyringService, storeKey); err != nil {
			return nil, err
		}
		return &Store{}, nil
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return &st, nil
}
