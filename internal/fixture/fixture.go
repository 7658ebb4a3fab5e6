// Package fixture decodes the JSON seed files consumed by the bulk-load
// endpoints.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads dir/name and decodes it as a JSON array of T.
func Load[T any](dir, name string) ([]T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return items, nil
}
