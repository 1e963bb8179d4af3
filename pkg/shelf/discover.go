package shelf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mayakit/shelf/pkg/shelfdir"
	"github.com/mayakit/shelf/pkg/tool"
)

// Discover walks one level of the shelf root and returns its categories in
// lexicographic order, the reserved icon directory excluded. A missing root
// is not an error: it yields an empty shelf. Unreadable category
// directories are errors.
func Discover(d shelfdir.Dir) ([]Category, error) {
	if !d.Exists() {
		return nil, nil
	}

	var cats []Category

	for _, name := range d.CategoryNames() {
		cat, err := discoverCategory(d.CategoryDir(name), name)
		if err != nil {
			return nil, err
		}

		cats = append(cats, cat)
	}

	return cats, nil
}

// discoverCategory collects a category's flat tools and popup folders.
func discoverCategory(dir, name string) (Category, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Category{}, fmt.Errorf("shelf: read category %q: %w", name, err)
	}

	cat := Category{Name: name}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		if e.IsDir() {
			cat.Popups = append(cat.Popups, discoverPopup(path))
			continue
		}

		if !tool.IsScript(e.Name()) {
			continue
		}

		t, ok := tool.FromFile(path)
		if !ok {
			continue
		}

		cat.Tools = append(cat.Tools, t)
	}

	return cat, nil
}

// discoverPopup collects a popup folder's qualifying scripts. A file whose
// derived name equals the folder name becomes the popup's primary action
// and is excluded from the menu items; package initializers never become
// items. Filtering builds fresh slices, so the folder listing is never
// mutated mid-traversal. An unreadable folder still yields a bare popup
// button, matching the zero-file case.
func discoverPopup(path string) Popup {
	p := Popup{Name: filepath.Base(path), Path: path}

	entries, err := os.ReadDir(path)
	if err != nil {
		return p
	}

	for _, e := range entries {
		if e.IsDir() || !tool.IsScript(e.Name()) || tool.IsPackageInit(e.Name()) {
			continue
		}

		t, ok := tool.FromFile(filepath.Join(path, e.Name()))
		if !ok {
			continue
		}

		if p.Primary == nil && t.Name == p.Name {
			primary := t
			p.Primary = &primary

			continue
		}

		p.Items = append(p.Items, t)
	}

	return p
}
