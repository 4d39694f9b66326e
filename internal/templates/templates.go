// Package templates writes the derived, unmanaged project files: the usage
// guide, the readme and the ignore file. Each is written only when absent;
// there is no merge.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
)

// OutputPlaceholder is replaced in the readme with the absolute output path.
const OutputPlaceholder = "{{output_dir}}"

// Artifact names.
const (
	UsageFile     = "USAGE.md"
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
)

//go:embed assets/*
var assets embed.FS

// Outcome reports whether an artifact was written.
type Outcome struct {
	Name    string
	Written bool
}

// Artifact is one derived file.
type Artifact struct {
	Name   string
	Render func(root string) (string, error)
}

// Artifacts returns the derived files for locale in write order.
func Artifacts(loc i18n.Locale) []Artifact {
	return []Artifact{
		{Name: UsageFile, Render: func(string) (string, error) {
			return read("usage." + string(localeOrDefault(loc)) + ".md")
		}},
		{Name: ReadmeFile, Render: func(root string) (string, error) {
			tmpl, err := read("readme." + string(localeOrDefault(loc)) + ".md")
			if err != nil {
				return "", err
			}
			return Substitute(tmpl, path.Join(root, "output")), nil
		}},
		{Name: GitignoreFile, Render: func(string) (string, error) {
			return read("gitignore")
		}},
	}
}

// Substitute replaces the output placeholder in tmpl.
func Substitute(tmpl, outputDir string) string {
	return strings.ReplaceAll(tmpl, OutputPlaceholder, outputDir)
}

func localeOrDefault(loc i18n.Locale) i18n.Locale {
	if loc == i18n.Chinese {
		return i18n.Chinese
	}
	return i18n.English
}

func read(name string) (string, error) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}

// Materialize writes every artifact that does not exist yet into dir.
// root is the canonical forward-slash project path used for substitution.
// The first failure is returned.
func Materialize(dir, root string, loc i18n.Locale) ([]Outcome, error) {
	arts := Artifacts(loc)
	outcomes := make([]Outcome, 0, len(arts))
	for _, a := range arts {
		target := filepath.Join(dir, a.Name)
		if _, err := os.Lstat(target); err == nil {
			outcomes = append(outcomes, Outcome{Name: a.Name})
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return outcomes, fmt.Errorf("checking %s: %w", target, err)
		}

		content, err := a.Render(root)
		if err != nil {
			return outcomes, err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return outcomes, fmt.Errorf("writing %s: %w", target, err)
		}
		outcomes = append(outcomes, Outcome{Name: a.Name, Written: true})
	}
	return outcomes, nil
}
