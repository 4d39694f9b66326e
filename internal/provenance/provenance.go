// Package provenance writes the one-time record of how a project was
// initialized. The record is never read back, merged, or rewritten: its
// presence alone suppresses later writes.
package provenance

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the provenance artifact in the project root.
const FileName = "yuuskel.toml"

const header = "# Generated by yuuskel. Do not edit by hand.\n\n"

// Record summarizes the choices of the first run.
type Record struct {
	Version        string
	Prefix         string // token without separator, "" when absent
	GitInitialized bool
	License        string // identifier, "" when absent
	Dirs           []string
}

// document is the on-disk shape. Absent optional values encode as false.
type document struct {
	Yuuskel entry `toml:"yuuskel"`
}

type entry struct {
	Version        string      `toml:"version"`
	Prefix         interface{} `toml:"prefix"`
	GitInitialized bool        `toml:"git_initialized"`
	License        interface{} `toml:"license"`
	Dirs           []string    `toml:"dirs"`
}

func orFalse(s string) interface{} {
	if s == "" {
		return false
	}
	return s
}

// Encode renders r in its on-disk form.
func Encode(r Record) ([]byte, error) {
	dirs := r.Dirs
	if dirs == nil {
		dirs = []string{}
	}
	doc := document{Yuuskel: entry{
		Version:        r.Version,
		Prefix:         orFalse(r.Prefix),
		GitInitialized: r.GitInitialized,
		License:        orFalse(r.License),
		Dirs:           dirs,
	}}

	var buf bytes.Buffer
	buf.WriteString(header)
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding provenance: %w", err)
	}
	return buf.Bytes(), nil
}

// Exists reports whether a record is already present in dir.
func Exists(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, FileName))
	return err == nil
}

// Write creates the record in dir unless one is already present. It
// returns whether a record was written. The existence check and creation
// are a single exclusive open.
func Write(dir string, r Record) (bool, error) {
	data, err := Encode(r)
	if err != nil {
		return false, err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
