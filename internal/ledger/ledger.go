// Package ledger computes the configuration keys yuuskel owns for a run.
//
// The owned set is derived from the current prefix only. It is never
// persisted or inferred from file content, so changing the prefix between
// runs orphans keys bound to the old prefix instead of deleting them.
package ledger

import (
	"path"
	"strings"

	"github.com/fyrsmithlabs/yuuskel/internal/layout"
)

// RootKey is the key bound to the project root. It is never prefixed.
const RootKey = "PROJECT_ROOT"

// Separator joins a prefix token to a key.
const Separator = "_"

// NormalizePrefix folds raw into an ownership prefix: uppercase, every
// character outside [A-Z0-9_] replaced by an underscore, ending in exactly
// one separator. Input that is empty once trailing separators are removed
// yields "" (no prefix).
func NormalizePrefix(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	token := strings.TrimRight(b.String(), Separator)
	if token == "" {
		return ""
	}
	return token + Separator
}

// SuggestPrefix derives the prefix offered by default for a project folder.
// ASCII letters and digits are uppercased, everything else becomes '_'.
func SuggestPrefix(folder string) string {
	var b strings.Builder
	for _, r := range folder {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Token returns the prefix without its trailing separator, or "".
func Token(prefix string) string {
	return strings.TrimSuffix(prefix, Separator)
}

// Assignment is one generated KEY="value" line.
type Assignment struct {
	Key   string
	Value string
}

// String renders the assignment as written to the env file.
func (a Assignment) String() string {
	return a.Key + `="` + a.Value + `"`
}

// Ledger is the ordered owned-key set for one prefix.
type Ledger struct {
	prefix   string
	bindings []layout.Binding
	keys     []string
	owned    map[string]struct{}
}

// New builds the ledger for prefix over bindings. prefix is normalized.
func New(prefix string, bindings []layout.Binding) *Ledger {
	prefix = NormalizePrefix(prefix)

	keys := make([]string, 0, len(bindings)+1)
	keys = append(keys, RootKey)
	for _, b := range bindings {
		keys = append(keys, prefix+b.Key)
	}

	owned := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		owned[k] = struct{}{}
	}

	return &Ledger{
		prefix:   prefix,
		bindings: bindings,
		keys:     keys,
		owned:    owned,
	}
}

// Prefix returns the normalized prefix, possibly "".
func (l *Ledger) Prefix() string { return l.prefix }

// Keys returns the owned keys in canonical order, root key first.
func (l *Ledger) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Owns reports whether key is owned this run. Matching is exact.
func (l *Ledger) Owns(key string) bool {
	_, ok := l.owned[key]
	return ok
}

// Assignments returns the generated lines for a canonical root, in the same
// order as Keys. root must use forward slashes.
func (l *Ledger) Assignments(root string) []Assignment {
	out := make([]Assignment, 0, len(l.keys))
	out = append(out, Assignment{Key: RootKey, Value: root})
	for _, b := range l.bindings {
		out = append(out, Assignment{Key: l.prefix + b.Key, Value: path.Join(root, b.Path)})
	}
	return out
}
