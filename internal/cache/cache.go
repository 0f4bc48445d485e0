package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daemonp/visonic2mqtt/internal/panel"
)

const cacheFileName = "visonic2mqtt_snapshot.json"

// Save writes the startup snapshot to the cache file. Tokens are never part
// of the snapshot; only the read-only inventory is persisted.
func Save(snapshot *panel.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("failed to get cache directory: %v", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %v", err)
	}

	return nil
}

// Load reads the cached snapshot. A missing cache file is not an error; it
// returns nil without one.
func Load() (*panel.Snapshot, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache directory: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %v", err)
	}

	var snapshot panel.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %v", err)
	}

	return &snapshot, nil
}

func Delete() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("failed to get cache directory: %v", err)
	}

	err = os.Remove(filepath.Join(dir, cacheFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %v", err)
	}

	return nil
}

func cacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}

	return filepath.Join(homeDir, ".cache", "visonic2mqtt"), nil
}
