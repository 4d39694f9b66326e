package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/layout"
	"github.com/fyrsmithlabs/yuuskel/internal/ledger"
	"github.com/fyrsmithlabs/yuuskel/internal/license"
)

// Mode selects where the project is initialized.
type Mode int

const (
	// ModeNewFolder creates (or reuses) a named folder under the working directory.
	ModeNewFolder Mode = iota
	// ModeCurrentDir initializes the working directory itself.
	ModeCurrentDir
)

// GitChoice is the version-control decision.
type GitChoice int

const (
	GitNone GitChoice = iota
	GitInit
	GitInitAndCommit
)

// DefaultProjectName is offered when asking for a folder name.
const DefaultProjectName = "my_project"

// MaxProjectNameLen bounds project names, in characters.
const MaxProjectNameLen = 100

// Plan is every decision a run needs, gathered before any filesystem change.
type Plan struct {
	Root       string
	Existing   bool
	Locale     i18n.Locale
	Prefix     string
	License    license.ID
	Git        GitChoice
	Categories []layout.Category
}

func (p Plan) categories() []layout.Category {
	if len(p.Categories) == 0 {
		return layout.Default()
	}
	return p.Categories
}

// Name validation errors.
var (
	ErrNameEmpty   = errors.New("project name is empty")
	ErrNameTooLong = errors.New("project name too long")
	ErrNameInvalid = errors.New("project name contains invalid characters")
)

// ValidateProjectName checks a folder name entered by the user.
func ValidateProjectName(name string) error {
	switch {
	case name == "":
		return ErrNameEmpty
	case utf8.RuneCountInString(name) > MaxProjectNameLen:
		return ErrNameTooLong
	case name == "." || name == "..":
		return ErrNameInvalid
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator):
		return ErrNameInvalid
	}
	return nil
}

// NameMessage maps a validation error to its localized message key.
func NameMessage(err error) i18n.Key {
	switch {
	case errors.Is(err, ErrNameEmpty):
		return i18n.NameEmpty
	case errors.Is(err, ErrNameTooLong):
		return i18n.NameTooLong
	default:
		return i18n.NameInvalid
	}
}

// Target resolves the project root for mode.
func Target(mode Mode, cwd, name string) string {
	if mode == ModeCurrentDir {
		return cwd
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cwd, name)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SuggestPrefix returns the prefix offered for root's folder name.
func SuggestPrefix(root string) string {
	return ledger.SuggestPrefix(filepath.Base(root))
}
