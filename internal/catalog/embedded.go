// Embedded catalog loader. The built-in scheme collection is baked into the
// binary with go:embed so the browser works with no filesystem dependencies;
// user catalogs loaded at runtime overlay it via Catalog.Merge.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeddedData contains all YAML files under data/ baked into the binary.
//
//go:embed data
var embeddedData embed.FS

// document is the on-disk shape of a catalog file. A file may declare
// categories, schemes, or both; the built-in data keeps categories in
// data/categories.yaml and one schemes file per category.
type document struct {
	Categories []Category `yaml:"categories"`
	Schemes    []Scheme   `yaml:"schemes"`
}

// Load parses the embedded catalog. Files are walked in lexical order, which
// fixes both the category declaration order and the scheme source order.
func Load() (*Catalog, error) {
	var doc document

	err := fs.WalkDir(embeddedData, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		raw, err := embeddedData.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", path, err)
		}
		var part document
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return fmt.Errorf("parse embedded %s: %w", path, err)
		}
		doc.Categories = append(doc.Categories, part.Categories...)
		doc.Schemes = append(doc.Schemes, part.Schemes...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return New(doc.Schemes, doc.Categories), nil
}

// LoadFile parses a user catalog file. The result is typically merged onto
// the embedded catalog rather than used alone.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return New(doc.Schemes, doc.Categories), nil
}

// validate rejects records the browser cannot render: blank identities,
// blank URL templates, and duplicate ids.
func validate(doc document) error {
	seenCat := make(map[CategoryID]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("category %q: id and name are required", c.ID)
		}
		if seenCat[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seenCat[c.ID] = true
	}

	seen := make(map[string]bool, len(doc.Schemes))
	for _, s := range doc.Schemes {
		if s.ID == "" || s.Name == "" || s.URL == "" {
			return fmt.Errorf("scheme %q: id, name and url are required", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scheme id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
