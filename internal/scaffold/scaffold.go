// Package scaffold prepares a project for placeholder generation: the
// category directories under the output root, a starter config file and an
// editable copy of the catalog.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/spf13/afero"
)

// ConfigFile and CatalogFile are the names Init writes under the project root.
const (
	ConfigFile  = "placeholders.yaml"
	CatalogFile = "gallery.yaml"
)

// Result reports what Init created and what it left alone.
type Result struct {
	Created []string
	Skipped []string
}

// Init creates outputDir/<category> for every category of c and writes
// ConfigFile and CatalogFile into root on fsys. Existing files are never
// overwritten; they are reported in Result.Skipped.
func Init(fsys afero.Fs, root, outputDir string, c catalog.Catalog) (*Result, error) {
	res := &Result{}

	for _, name := range c.Names() {
		dir := filepath.Join(root, outputDir, name)
		if _, err := fsys.Stat(dir); err == nil {
			res.Skipped = append(res.Skipped, dir)
			continue
		}
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("creating directory %q: %w", dir, err)
		}
		res.Created = append(res.Created, dir)
	}

	catalogData, err := catalog.Marshal(c)
	if err != nil {
		return res, fmt.Errorf("encoding catalog: %w", err)
	}

	configContent := fmt.Sprintf(`# Placeholder generator settings.
output: %q
catalog: %q
formats:
  - svg
quality: 75
mkdir: false
`, filepath.ToSlash(outputDir), CatalogFile)

	files := []struct {
		name string
		data []byte
	}{
		{ConfigFile, []byte(configContent)},
		{CatalogFile, catalogData},
	}
	for _, f := range files {
		path := filepath.Join(root, f.name)
		created, err := writeNew(fsys, path, f.data)
		if err != nil {
			return res, err
		}
		if created {
			res.Created = append(res.Created, path)
		} else {
			res.Skipped = append(res.Skipped, path)
		}
	}

	return res, nil
}

// writeNew writes data to path unless the file already exists.
func writeNew(fsys afero.Fs, path string, data []byte) (bool, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, f.Close()
}
