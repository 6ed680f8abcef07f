package build

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFile writes data to path, replacing any existing file. When mkdir is
// false the parent directory must already exist; the write fails otherwise.
func WriteFile(fs afero.Fs, path string, data []byte, mkdir bool) error {
	dir := filepath.Dir(path)
	if mkdir {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	} else if _, err := fs.Stat(dir); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// swapExt replaces the extension of filename with ext (without dot).
func swapExt(filename, ext string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))] + "." + ext
}
