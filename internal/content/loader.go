package content

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// Load reads a YAML content document from fsys and lays it over the
// built-in defaults. An empty path, or a path that does not exist, yields
// the defaults. The result is validated before it is returned.
func Load(fsys afero.Fs, path string) (*Page, error) {
	page := Default()

	if path == "" {
		return page, nil
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("stat content file %s: %w", path, err)
	}
	if !exists {
		slog.Info("No content file found, using built-in content", "path", path)
		return page, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}

	page, err = Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load content file %s: %w", path, err)
	}

	slog.Info("Loaded content file", "path", path)
	return page, nil
}

// Parse decodes a YAML content document over the built-in defaults.
// Unknown keys are rejected.
func Parse(data []byte) (*Page, error) {
	page := Default()
	if err := yaml.UnmarshalWithOptions(data, page, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	applyDefaults(page)
	if err := Validate(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Encode renders p as a YAML document, the inverse of Parse.
func Encode(p *Page) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return data, nil
}
