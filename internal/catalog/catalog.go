// Package catalog holds the table of placeholder images to generate: an
// ordered list of categories, each with an ordered list of image descriptors.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Descriptor describes a single placeholder image.
type Descriptor struct {
	Filename string `yaml:"filename" toml:"filename" json:"filename"`
	Width    int    `yaml:"width"    toml:"width"    json:"width"`
	Height   int    `yaml:"height"   toml:"height"   json:"height"`
	Color    string `yaml:"color"    toml:"color"    json:"color"`
}

// Category is a named group of descriptors sharing one output subdirectory.
type Category struct {
	Name   string       `yaml:"name"   toml:"name"   json:"name"`
	Images []Descriptor `yaml:"images" toml:"images" json:"images"`
}

// Catalog is the ordered table of categories. Iteration order is table order.
type Catalog []Category

// Entry is one (category, descriptor) pair of a flattened Catalog.
type Entry struct {
	Category string
	Descriptor
}

// Default returns a fresh copy of the built-in gallery table.
func Default() Catalog {
	return Catalog{
		{Name: "portraits", Images: []Descriptor{
			{"portrait1.svg", 400, 600, "#D4C5B9"},
			{"portrait2.svg", 400, 400, "#C7B299"},
			{"portrait3.svg", 400, 600, "#B5A081"},
		}},
		{Name: "events", Images: []Descriptor{
			{"event1.svg", 600, 400, "#E8DDD4"},
			{"event2.svg", 400, 400, "#DDD0C0"},
			{"event3.svg", 600, 400, "#D0C0B0"},
		}},
		{Name: "farms", Images: []Descriptor{
			{"farm1.svg", 600, 400, "#C5B5A0"},
			{"farm2.svg", 400, 600, "#B8A990"},
			{"farm3.svg", 600, 400, "#A89080"},
		}},
		{Name: "portfolio", Images: []Descriptor{
			{"portfolio1.svg", 400, 400, "#E5DAD1"},
			{"portfolio2.svg", 400, 600, "#D8CCC0"},
			{"portfolio3.svg", 600, 400, "#CBBEB0"},
			{"portfolio4.svg", 400, 400, "#BEB1A0"},
			{"portfolio5.svg", 400, 600, "#B1A490"},
			{"portfolio6.svg", 600, 400, "#A49780"},
			{"portfolio7.svg", 400, 400, "#978A70"},
			{"portfolio8.svg", 400, 600, "#8A7D60"},
			{"portfolio9.svg", 600, 400, "#7D7050"},
		}},
	}
}

// Entries flattens the catalog in table order.
func (c Catalog) Entries() []Entry {
	entries := make([]Entry, 0, c.Len())
	for _, cat := range c {
		for _, d := range cat.Images {
			entries = append(entries, Entry{Category: cat.Name, Descriptor: d})
		}
	}
	return entries
}

// Len returns the total number of descriptors across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, cat := range c {
		n += len(cat.Images)
	}
	return n
}

// Names returns the category names in table order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, cat := range c {
		names[i] = cat.Name
	}
	return names
}

// Filter returns the categories named in names, in table order. With no
// names the catalog is returned unchanged.
func (c Catalog) Filter(names ...string) (Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out Catalog
	for _, cat := range c {
		if want[cat.Name] {
			out = append(out, cat)
			delete(want, cat.Name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for _, n := range names {
			if want[n] {
				unknown = append(unknown, n)
			}
		}
		return nil, fmt.Errorf("unknown category %s (have %s)",
			strings.Join(unknown, ", "), strings.Join(c.Names(), ", "))
	}
	return out, nil
}

// Validate checks that every descriptor maps to a distinct output path.
// Dimensions and colors are deliberately left unchecked: they are written
// into the markup as given.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range c {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("catalog: category name is required")
		}
		if strings.ContainsAny(cat.Name, `/\`) {
			return fmt.Errorf("catalog: category name %q must not contain a path separator", cat.Name)
		}
		for _, d := range cat.Images {
			if strings.TrimSpace(d.Filename) == "" {
				return fmt.Errorf("catalog: %s: image filename is required", cat.Name)
			}
			if strings.ContainsAny(d.Filename, `/\`) || d.Filename == "." || d.Filename == ".." {
				return fmt.Errorf("catalog: %s: image filename %q must be a plain file name", cat.Name, d.Filename)
			}
			key := filepath.Join(cat.Name, d.Filename)
			if seen[key] {
				return fmt.Errorf("catalog: duplicate output path %s", key)
			}
			seen[key] = true
		}
	}
	return nil
}

// Label returns the text drawn on the placeholder, e.g. "PORTRAITS 400x600".
func (e Entry) Label() string {
	upper := cases.Upper(language.Und)
	return fmt.Sprintf("%s %dx%d", upper.String(e.Category), e.Width, e.Height)
}

// Path returns the output path root/category/filename.
func (e Entry) Path(root string) string {
	return filepath.Join(root, e.Category, e.Filename)
}
