package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devflowinc/trieve-CLI/internal/utils/system"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

const storeFileName = "profiles.yaml"

// StorePath returns the location of the YAML profile store. The default
// under ~/.trieve can be overridden with --profiles-file or the
// TRIEVE_PROFILES_FILE env var.
func StorePath() (string, error) {
	if path := viper.GetString("profiles_file"); path != "" {
		return path, nil
	}
	trieveDir, err := system.GetTrieveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(trieveDir, storeFileName), nil
}

func loadStoreFromFile() (*Store, error) {
	storePath, err := StorePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(storePath); os.IsNotExist(err) {
		return &Store{}, nil
	}

	raw, err := os.ReadFile(storePath)
	if err != nil {
		return nil, fmt.Errorf("reading profile store: %w", err)
	}

	var st Store
	if err := yaml.Unmarshal(raw, &st); err != nil {
		// The file is meant to be edited by hand, so keep it in place
		// and point at it instead of discarding it.
		return nil, fmt.Errorf("parsing profile store %s: %w", storePath, err)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile store %s: %w", storePath, err)
	}
	return &st, nil
}

func saveStoreToFile(st *Store) error {
	if err := st.Validate(); err != nil {
		return err
	}

	storePath, err := StorePath()
	if err != nil {
		return err
	}

	// Ensure the directory exists
	if err := system.CreateDirIfNotExist(filepath.Dir(storePath)); err != nil {
		return err
	}

	raw, err := yaml.Marshal(st)
	if err != nil {
		return err
	}

	// The store holds API keys, so restrict permissions (0600)
	if err := os.WriteFile(storePath, raw, 0600); err != nil {
		return fmt.Errorf("writing profile store: %w", err)
	}
	return nil
}
