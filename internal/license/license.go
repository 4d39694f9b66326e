// Package license holds the enumerated license choices offered for new
// projects and renders their LICENSE text.
package license

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileName is the license artifact in the project root.
const FileName = "LICENSE"

// DefaultHolder is used when no copyright holder is known.
const DefaultHolder = "the project authors"

//go:embed texts/*.txt
var texts embed.FS

// ID identifies a license choice. The empty ID means no license.
type ID string

const (
	None        ID = ""
	MIT         ID = "MIT"
	Apache2     ID = "Apache-2.0"
	AGPL3       ID = "AGPL-3.0"
	GPL3        ID = "GPL-3.0"
	LGPL3       ID = "LGPL-3.0"
	MPL2        ID = "MPL-2.0"
	BSL1        ID = "BSL-1.0"
	Unlicense   ID = "Unlicense"
	Proprietary ID = "Proprietary"
)

// License describes one choice.
type License struct {
	ID    ID
	Label string // menu label
	Name  string // full name
	URL   string // canonical text
	file  string // embedded template
}

// Catalog returns the licenses in menu order, excluding None.
func Catalog() []License {
	return []License{
		{ID: MIT, Label: "MIT", Name: "MIT License", URL: "https://opensource.org/license/mit", file: "mit.txt"},
		{ID: Apache2, Label: "Apache-2.0", Name: "Apache License 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0.txt", file: "notice.txt"},
		{ID: AGPL3, Label: "GNU AGPLv3", Name: "GNU Affero General Public License v3.0", URL: "https://www.gnu.org/licenses/agpl-3.0.txt", file: "notice.txt"},
		{ID: GPL3, Label: "GNU GPLv3", Name: "GNU General Public License v3.0", URL: "https://www.gnu.org/licenses/gpl-3.0.txt", file: "notice.txt"},
		{ID: LGPL3, Label: "GNU LGPLv3", Name: "GNU Lesser General Public License v3.0", URL: "https://www.gnu.org/licenses/lgpl-3.0.txt", file: "notice.txt"},
		{ID: MPL2, Label: "Mozilla Public License 2.0", Name: "Mozilla Public License 2.0", URL: "https://www.mozilla.org/media/MPL/2.0/index.txt", file: "notice.txt"},
		{ID: BSL1, Label: "Boost Software License 1.0", Name: "Boost Software License 1.0", URL: "https://www.boost.org/LICENSE_1_0.txt", file: "bsl-1.0.txt"},
		{ID: Unlicense, Label: "Unlicense", Name: "The Unlicense", URL: "https://unlicense.org", file: "unlicense.txt"},
		{ID: Proprietary, Label: "Proprietary", Name: "Proprietary", file: "proprietary.txt"},
	}
}

// ErrUnknown is returned for an identifier not in the catalog.
var ErrUnknown = errors.New("unknown license")

// Lookup finds a license by identifier, case-insensitively. "none" and ""
// resolve to None.
func Lookup(id string) (ID, error) {
	if id == "" || strings.EqualFold(id, "none") {
		return None, nil
	}
	for _, l := range Catalog() {
		if strings.EqualFold(string(l.ID), id) {
			return l.ID, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknown, id)
}

func find(id ID) (License, bool) {
	for _, l := range Catalog() {
		if l.ID == id {
			return l, true
		}
	}
	return License{}, false
}

// Render returns the LICENSE text for id with year and holder filled in.
func Render(id ID, year int, holder string) (string, error) {
	l, ok := find(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, id)
	}
	raw, err := texts.ReadFile("texts/" + l.file)
	if err != nil {
		return "", fmt.Errorf("reading %s template: %w", id, err)
	}
	if holder == "" {
		holder = DefaultHolder
	}
	r := strings.NewReplacer(
		"{{year}}", strconv.Itoa(year),
		"{{holder}}", holder,
		"{{name}}", l.Name,
		"{{id}}", string(l.ID),
		"{{url}}", l.URL,
	)
	return r.Replace(string(raw)), nil
}

// WriteIfAbsent writes the rendered license into dir unless a LICENSE file
// already exists. It reports whether the file was written.
func WriteIfAbsent(dir string, id ID, year int, holder string) (bool, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	text, err := Render(id, year, holder)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
