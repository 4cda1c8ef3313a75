package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads values saved by [Save] from the file at path and applies them to
// g. A missing file leaves g at its current values and is not an error.
func Load(path string, g *Group) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	var values map[string]Value
	err = json.Unmarshal(data, &values)
	if err != nil {
		return fmt.Errorf("decoding settings file %s: %w", path, err)
	}
	return g.Apply(values)
}

// Save writes the values of g to the file at path as JSON, creating the parent
// directory if needed.
func Save(path string, g *Group) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(g.Values(), "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
