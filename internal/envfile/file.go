package envfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/fyrsmithlabs/yuuskel/internal/ledger"
)

// FilePerm is the permission used when the env file is created.
const FilePerm = 0o644

// Result reports what ReconcileFile did.
type Result struct {
	Path    string
	Existed bool
	Stats   Stats
}

// ReconcileFile reads path (absent means empty), reconciles it against l for
// the canonical root, and writes the whole file back. Any read error other
// than not-exist, and any write error, is returned.
func ReconcileFile(path string, l *ledger.Ledger, root string) (*Result, error) {
	res := &Result{Path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		res.Existed = true
	case errors.Is(err, os.ErrNotExist):
		data = nil
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	out, stats := reconcile(string(data), l, l.Assignments(root))
	res.Stats = stats

	if err := os.WriteFile(path, []byte(out), FilePerm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return res, nil
}
