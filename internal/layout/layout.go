// Package layout defines the standard project directory layout and ensures
// it exists under a project root.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirPerm is the permission used for every created directory.
const DirPerm = 0o755

// Category is one semantic directory of the standard layout.
type Category struct {
	// Name identifies the category in reports ("input", "temp_assets").
	Name string
	// Path is the slash-separated path relative to the project root.
	Path string
	// EnvKey is the unprefixed configuration key bound to Path.
	EnvKey string
	// ParentKey, when set, also binds the parent directory of Path.
	// The parent binding is emitted just before this category's own.
	ParentKey string
}

// Binding pairs an unprefixed configuration key with a relative path.
type Binding struct {
	Key  string
	Path string
}

// Default returns the standard layout in declaration order.
func Default() []Category {
	return []Category{
		{Name: "input", Path: "input", EnvKey: "INPUT_DIR"},
		{Name: "output", Path: "output", EnvKey: "OUTPUT_DIR"},
		{Name: "temp_assets", Path: "assets/temp", EnvKey: "TEMP_ASSETS_DIR", ParentKey: "ASSETS_DIR"},
		{Name: "src", Path: "src", EnvKey: "SRC_DIR"},
		{Name: "scripts", Path: "scripts", EnvKey: "SCRIPTS_DIR"},
		{Name: "configs", Path: "configs", EnvKey: "CONFIGS_DIR"},
		{Name: "docs", Path: "docs", EnvKey: "DOCS_DIR"},
		{Name: "notebooks", Path: "notebooks", EnvKey: "NOTEBOOKS_DIR"},
	}
}

// Paths returns the relative paths of categories in order.
func Paths(categories []Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Path
	}
	return out
}

// Bindings expands categories into key bindings in ledger order.
func Bindings(categories []Category) []Binding {
	out := make([]Binding, 0, len(categories)+1)
	for _, c := range categories {
		if c.ParentKey != "" {
			if parent := path.Dir(c.Path); parent != "." {
				out = append(out, Binding{Key: c.ParentKey, Path: parent})
			}
		}
		out = append(out, Binding{Key: c.EnvKey, Path: c.Path})
	}
	return out
}

// Outcome reports what Ensure did for one category.
type Outcome struct {
	Category Category
	Created  bool
}

// ErrNotDirectory is returned when a category path exists as a file.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// Ensure creates every category directory (and missing ancestors) under
// root. Existing directories are left untouched. Any creation failure is
// returned immediately.
func Ensure(root string, categories []Category) ([]Outcome, error) {
	if err := os.MkdirAll(root, DirPerm); err != nil {
		return nil, fmt.Errorf("creating project root %s: %w", root, err)
	}

	outcomes := make([]Outcome, 0, len(categories))
	for _, c := range categories {
		dir := filepath.Join(root, filepath.FromSlash(c.Path))

		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			outcomes = append(outcomes, Outcome{Category: c})
			continue
		case err == nil:
			return outcomes, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		case !errors.Is(err, os.ErrNotExist):
			return outcomes, fmt.Errorf("checking %s: %w", dir, err)
		}

		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return outcomes, fmt.Errorf("creating %s: %w", dir, err)
		}
		outcomes = append(outcomes, Outcome{Category: c, Created: true})
	}
	return outcomes, nil
}

// Canonical returns the absolute, symlink-resolved form of root with
// forward slashes. If root cannot be resolved the absolute form is used.
func Canonical(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return strings.ReplaceAll(abs, `\`, "/"), nil
}
