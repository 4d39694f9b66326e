package vcs

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Identity is the committer identity git would use.
type Identity struct {
	Name  string
	Email string
}

// Complete reports whether both name and email are set.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Email != ""
}

// LookupIdentity resolves user.name and user.email for dir. When dir is a
// repository its local config is merged over the global one; otherwise only
// the global config is read. Unreadable config yields an empty identity.
func LookupIdentity(dir string) Identity {
	if dir != "" {
		if repo, err := git.PlainOpen(dir); err == nil {
			if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
				return Identity{Name: cfg.User.Name, Email: cfg.User.Email}
			}
		}
	}

	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return Identity{}
	}
	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}
}
