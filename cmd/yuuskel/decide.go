package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fyrsmithlabs/yuuskel/internal/config"
	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/license"
	"github.com/fyrsmithlabs/yuuskel/internal/prompt"
	"github.com/fyrsmithlabs/yuuskel/internal/report"
	"github.com/fyrsmithlabs/yuuskel/internal/scaffold"
	"github.com/fyrsmithlabs/yuuskel/internal/vcs"
)

// Prompter asks the interactive questions. prompt.Terminal implements it.
type Prompter interface {
	Select(title string, items []string, def int) (int, error)
	Input(title, def string, validate func(string) error) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// errCancelled ends a run without changes and with exit status 0.
var errCancelled = errors.New("cancelled")

// decider turns flags, configuration and answers into a scaffold.Plan.
// A nil prompter means every undecided choice takes its default.
type decider struct {
	opts     options
	cfg      *config.Config
	cwd      string
	prompter Prompter
	identity func(dir string) vcs.Identity
	out      io.Writer
	errOut   io.Writer

	locale   i18n.Locale
	reporter *report.Reporter
}

func (d *decider) text(key i18n.Key) string { return i18n.Text(d.locale, key) }

func cancelled(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return errCancelled
	}
	return err
}

func (d *decider) decide() (scaffold.Plan, error) {
	var plan scaffold.Plan

	loc, err := d.decideLocale()
	if err != nil {
		return plan, err
	}
	d.locale = loc
	d.reporter = report.New(d.out, d.errOut, loc)
	d.reporter.Title()

	mode, err := d.decideMode()
	if err != nil {
		return plan, err
	}
	name := ""
	if mode == scaffold.ModeNewFolder {
		if name, err = d.decideName(); err != nil {
			return plan, err
		}
	}

	root := scaffold.Target(mode, d.cwd, name)
	existing := mode == scaffold.ModeCurrentDir || scaffold.Exists(root)
	d.reporter.Target(root)

	if mode == scaffold.ModeNewFolder && existing {
		ok, err := d.confirm(i18n.DirExistsPrompt, false, true)
		if err != nil {
			return plan, err
		}
		if !ok {
			return plan, errCancelled
		}
	}

	prefix, err := d.decidePrefix(root)
	if err != nil {
		return plan, err
	}

	lic := license.None
	if !existing {
		if lic, err = d.decideLicense(); err != nil {
			return plan, err
		}
	}

	git, err := d.decideGit(root)
	if err != nil {
		return plan, err
	}

	return scaffold.Plan{
		Root:     root,
		Existing: existing,
		Locale:   loc,
		Prefix:   prefix,
		License:  lic,
		Git:      git,
	}, nil
}

func (d *decider) decideLocale() (i18n.Locale, error) {
	if d.opts.lang != "" {
		return i18n.ParseLocale(d.opts.lang)
	}
	def, _ := d.cfg.Locale()
	if def == "" {
		def = i18n.English
	}
	if d.prompter == nil {
		return def, nil
	}

	opts := i18n.Locales()
	items := make([]string, len(opts))
	defIdx := 0
	for i, o := range opts {
		items[i] = o.Name
		if o.Locale == def {
			defIdx = i
		}
	}
	title := i18n.Text(i18n.English, i18n.LanguagePrompt) + " / " + i18n.Text(i18n.Chinese, i18n.LanguagePrompt)
	idx, err := d.prompter.Select(title, items, defIdx)
	if err != nil {
		return "", cancelled(err)
	}
	return opts[idx].Locale, nil
}

func (d *decider) decideMode() (scaffold.Mode, error) {
	switch {
	case d.opts.here:
		return scaffold.ModeCurrentDir, nil
	case d.opts.name != "" || d.prompter == nil:
		return scaffold.ModeNewFolder, nil
	}
	idx, err := d.prompter.Select(d.text(i18n.ModePrompt), []string{
		d.text(i18n.ModeNewFolder),
		d.text(i18n.ModeCurrentDir),
	}, 0)
	if err != nil {
		return 0, cancelled(err)
	}
	if idx == 1 {
		return scaffold.ModeCurrentDir, nil
	}
	return scaffold.ModeNewFolder, nil
}

// validateName reports validation failures in the chosen language.
func (d *decider) validateName(name string) error {
	if err := scaffold.ValidateProjectName(name); err != nil {
		return errors.New(d.text(scaffold.NameMessage(err)))
	}
	return nil
}

func (d *decider) decideName() (string, error) {
	if d.opts.name != "" {
		if err := scaffold.ValidateProjectName(d.opts.name); err != nil {
			return "", fmt.Errorf("%s: %w", d.text(scaffold.NameMessage(err)), err)
		}
		return d.opts.name, nil
	}
	if d.prompter == nil {
		return scaffold.DefaultProjectName, nil
	}
	name, err := d.prompter.Input(d.text(i18n.ProjectNamePrompt), scaffold.DefaultProjectName, d.validateName)
	if err != nil {
		return "", cancelled(err)
	}
	return name, nil
}

func (d *decider) decidePrefix(root string) (string, error) {
	switch {
	case d.opts.noPrefix:
		return "", nil
	case d.opts.prefix != "":
		return d.opts.prefix, nil
	case d.prompter == nil:
		return d.cfg.Prefix, nil
	}

	def := 0
	if d.cfg.Prefix != "" {
		def = 1
	}
	idx, err := d.prompter.Select(d.text(i18n.PrefixChoicePrompt), []string{
		d.text(i18n.NoPrefix),
		d.text(i18n.WithPrefix),
	}, def)
	if err != nil {
		return "", cancelled(err)
	}
	if idx == 0 {
		return "", nil
	}

	suggested := d.cfg.Prefix
	if suggested == "" {
		suggested = scaffold.SuggestPrefix(root)
	}
	prefix, err := d.prompter.Input(d.text(i18n.PrefixPrompt), suggested, nil)
	if err != nil {
		return "", cancelled(err)
	}
	return prefix, nil
}

func (d *decider) decideLicense() (license.ID, error) {
	if d.opts.license != "" {
		return license.Lookup(d.opts.license)
	}
	def := d.cfg.LicenseID()
	if d.prompter == nil {
		return def, nil
	}

	catalog := license.Catalog()
	ids := make([]license.ID, 0, len(catalog)+1)
	items := make([]string, 0, len(catalog)+1)
	ids = append(ids, license.None)
	items = append(items, d.text(i18n.SkipLicense))
	defIdx := 0
	for _, l := range catalog {
		label := l.Label
		if l.ID == license.Proprietary {
			label = d.text(i18n.Proprietary)
		}
		if l.ID == def {
			defIdx = len(ids)
		}
		ids = append(ids, l.ID)
		items = append(items, label)
	}

	idx, err := d.prompter.Select(d.text(i18n.LicensePrompt), items, defIdx)
	if err != nil {
		return license.None, cancelled(err)
	}
	return ids[idx], nil
}

func (d *decider) decideGit(root string) (scaffold.GitChoice, error) {
	initRepo := d.opts.git || d.opts.commit
	if !initRepo {
		ok, err := d.confirm(i18n.GitInitPrompt, d.cfg.Git.Init, d.cfg.Git.Init)
		if err != nil {
			return scaffold.GitNone, err
		}
		initRepo = ok
	}
	if !initRepo {
		return scaffold.GitNone, nil
	}

	// Without an identity the commit cannot succeed; the run warns instead
	// of asking.
	if !d.identity(root).Complete() {
		return scaffold.GitInit, nil
	}

	commit := d.opts.commit
	if !commit {
		ok, err := d.confirm(i18n.CommitPrompt, d.cfg.Git.Commit, d.cfg.Git.Commit)
		if err != nil {
			return scaffold.GitNone, err
		}
		commit = ok
	}
	if commit {
		return scaffold.GitInitAndCommit, nil
	}
	return scaffold.GitInit, nil
}

// confirm asks a yes/no question. Without a prompter it returns unattended.
func (d *decider) confirm(key i18n.Key, def, unattended bool) (bool, error) {
	if d.prompter == nil {
		return unattended, nil
	}
	ok, err := d.prompter.Confirm(d.text(key), def)
	if err != nil {
		return false, cancelled(err)
	}
	return ok, nil
}
