// Package build drives placeholder generation: it walks a catalog in table
// order, renders each entry and writes the result under the output root.
package build

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/aellingwood/placeholders/internal/image"
	"github.com/aellingwood/placeholders/internal/render"
	"github.com/spf13/afero"
)

// CompletionNotice is printed once every file has been written.
const CompletionNotice = "All placeholder images created successfully!"

// BuildOptions controls where and how placeholders are written.
type BuildOptions struct {
	OutputDir string   // e.g. public/photos
	Formats   []string // svg, png, jpeg, webp; defaults to svg
	Quality   int      // jpeg/webp quality
	MkdirAll  bool     // create missing category directories
}

// BuildResult lists the files written, in write order.
type BuildResult struct {
	Written  []string
	Duration time.Duration
}

// Builder generates placeholder files for a catalog.
type Builder struct {
	fs      afero.Fs
	out     io.Writer
	options BuildOptions
}

// NewBuilder creates a Builder writing to fs and reporting progress to out.
func NewBuilder(fs afero.Fs, out io.Writer, opts BuildOptions) *Builder {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{image.FormatSVG}
	}
	if out == nil {
		out = io.Discard
	}
	return &Builder{
		fs:      fs,
		out:     out,
		options: opts,
	}
}

// Build writes one file per entry and format, strictly in table order, and
// prints "Created <path>" after each write. The first failure stops the run:
// later entries are not written and the completion notice is not printed.
func (b *Builder) Build(ctx context.Context, c catalog.Catalog) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}

	for _, e := range c.Entries() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		label := e.Label()
		svg := []byte(render.SVG(e.Width, e.Height, e.Color, label))

		for _, format := range b.options.Formats {
			path, data, err := b.encode(e, format, svg, label)
			if err != nil {
				return result, err
			}
			if err := WriteFile(b.fs, path, data, b.options.MkdirAll); err != nil {
				return result, err
			}
			slog.Debug("wrote placeholder", "path", path, "format", format, "bytes", len(data))

			result.Written = append(result.Written, path)
			fmt.Fprintf(b.out, "Created %s\n", path)
		}
	}

	fmt.Fprintln(b.out, CompletionNotice)
	result.Duration = time.Since(start)
	return result, nil
}

// encode returns the output path and file contents of e in format. SVG files
// keep the catalog filename; raster files swap its extension.
func (b *Builder) encode(e catalog.Entry, format string, svg []byte, label string) (string, []byte, error) {
	path := e.Path(b.options.OutputDir)
	if format == image.FormatSVG {
		return path, svg, nil
	}

	img, err := image.Rasterize(svg, e.Width, e.Height, e.Color, label, render.LabelColor)
	if err != nil {
		return "", nil, fmt.Errorf("rasterizing %s/%s: %w", e.Category, e.Filename, err)
	}
	var buf bytes.Buffer
	if err := image.Encode(&buf, img, format, b.options.Quality); err != nil {
		return "", nil, fmt.Errorf("encoding %s/%s: %w", e.Category, e.Filename, err)
	}
	return filepath.Join(filepath.Dir(path), swapExt(e.Filename, image.Extension(format))), buf.Bytes(), nil
}
