// Package i18n resolves locale-specific display names for banners.
package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps locale -> nested string tree, addressed with dotted keys.
type Catalog struct {
	locales map[string]map[string]any
}

// LoadCatalog reads a YAML file shaped as
//
//	en:
//	  politician:
//	    name: Shri Rajesh Kumar
//
// A missing file gives an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Catalog{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var locales map[string]map[string]any
	if err := yaml.Unmarshal(b, &locales); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	return &Catalog{locales: locales}, nil
}

// Lookup walks key through lang's tree and returns fallback when any
// segment is missing or the leaf is not a string.
func (c *Catalog) Lookup(lang, key, fallback string) string {
	return c.lookup(lang, fallback, strings.Split(key, ".")...)
}

// lookup walks explicit segments, so a segment may itself contain dots.
func (c *Catalog) lookup(lang, fallback string, path ...string) string {
	if c == nil {
		return fallback
	}
	root, ok := c.locales[lang]
	if !ok {
		return fallback
	}
	var node any = root
	for _, k := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return fallback
		}
		if node, ok = m[k]; !ok {
			return fallback
		}
	}
	if s, ok := node.(string); ok {
		return s
	}
	return fallback
}

// SubjectName is the localized form of a contact's name.
func (c *Catalog) SubjectName(lang, name string) string {
	return c.lookup(lang, name, "names", "karyakartas", name)
}

// PresenterName is the localized form of the representative's name.
func (c *Catalog) PresenterName(lang, fallback string) string {
	return c.Lookup(lang, "politician.name", fallback)
}
