package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a catalog. Categories are a list rather than
// a map so that table order survives a round trip.
type file struct {
	Categories []Category `yaml:"categories" toml:"categories"`
}

// Load reads a catalog from a YAML (.yaml, .yml) or TOML (.toml) file and
// validates it.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	c, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog data in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (Catalog, error) {
	var f file
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, err
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	c := Catalog(f.Categories)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal encodes the catalog as YAML in the same shape Load accepts.
func Marshal(c Catalog) ([]byte, error) {
	return yaml.Marshal(file{Categories: c})
}

// formatOf maps a file extension to a catalog format, defaulting to YAML.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
