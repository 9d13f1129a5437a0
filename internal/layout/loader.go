package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Files that fail to parse are skipped.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		lay, err := LoadFile(path)
		if err != nil {
			return nil
		}

		layouts = append(layouts, lay)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, lay := range layouts {
		ids[i] = lay.ID
	}
	return ids, nil
}

// LoadFile loads a single layout file.
// A layout without an id takes its file name without extension.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(FormatExtensions(), ext) {
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	lay, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if lay.ID == "" {
		lay.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	lay.FilePath = path
	return lay, nil
}
