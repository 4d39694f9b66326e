// Package envfile merges owned KEY="value" assignments into a line-oriented
// .env file while leaving every other line untouched.
//
// It is not a general dotenv parser: no quoting, escaping, multiline values
// or expansion. A non-blank, non-comment line is an opaque KEY=VALUE pair
// identified only by the text before its first '='.
package envfile

import (
	"strings"

	"github.com/fyrsmithlabs/yuuskel/internal/ledger"
)

// FileName is the conventional name of the reconciled file.
const FileName = ".env"

// Kind classifies a line.
type Kind int

const (
	// Opaque lines are blank, comments, or lack '='. Always preserved.
	Opaque Kind = iota
	// Assignment lines have a key before the first '='.
	Assignment
)

func (k Kind) String() string {
	if k == Assignment {
		return "assignment"
	}
	return "opaque"
}

// Line is one line of an env file.
type Line struct {
	Raw  string
	Kind Kind
	Key  string
}

// Owner reports whether a key is managed this run.
type Owner interface {
	Owns(key string) bool
}

// KeySet is an Owner backed by a set of exact keys.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Owns implements Owner.
func (s KeySet) Owns(key string) bool {
	_, ok := s[key]
	return ok
}

// Split breaks text into lines. Lines end at '\n'; trailing '\r' are
// dropped and a final empty segment after the last '\n' is not a line.
// Other whitespace is kept.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimRight(p, "\r")
	}
	return parts
}

// Classify tags a raw line.
func Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Line{Raw: raw, Kind: Opaque}
	}
	eq := strings.IndexByte(trimmed, '=')
	if eq < 0 {
		// Unparseable lines are kept as-is.
		return Line{Raw: raw, Kind: Opaque}
	}
	return Line{Raw: raw, Kind: Assignment, Key: trimmed[:eq]}
}

// Parse splits and classifies text.
func Parse(text string) []Line {
	raw := Split(text)
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Classify(r)
	}
	return lines
}

// Stats describes one reconciliation.
type Stats struct {
	Kept      int
	Dropped   int
	Generated int
}

// Reconcile drops every assignment whose key is owned, keeps all other
// lines in their original order, then appends generated in order. The result
// ends in exactly one newline.
func Reconcile(existing string, owned Owner, generated []ledger.Assignment) string {
	out, _ := reconcile(existing, owned, generated)
	return out
}

func reconcile(existing string, owned Owner, generated []ledger.Assignment) (string, Stats) {
	var stats Stats
	lines := Parse(existing)
	kept := make([]string, 0, len(lines)+len(generated))

	for _, l := range lines {
		if l.Kind == Assignment && owned.Owns(l.Key) {
			stats.Dropped++
			continue
		}
		kept = append(kept, l.Raw)
	}
	stats.Kept = len(kept)

	for _, a := range generated {
		kept = append(kept, a.String())
	}
	stats.Generated = len(generated)

	return strings.Join(kept, "\n") + "\n", stats
}
