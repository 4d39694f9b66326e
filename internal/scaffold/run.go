package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fyrsmithlabs/yuuskel/internal/envfile"
	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/layout"
	"github.com/fyrsmithlabs/yuuskel/internal/ledger"
	"github.com/fyrsmithlabs/yuuskel/internal/license"
	"github.com/fyrsmithlabs/yuuskel/internal/logging"
	"github.com/fyrsmithlabs/yuuskel/internal/provenance"
	"github.com/fyrsmithlabs/yuuskel/internal/report"
	"github.com/fyrsmithlabs/yuuskel/internal/templates"
	"github.com/fyrsmithlabs/yuuskel/internal/vcs"
	"go.uber.org/zap"
)

// Deps are the collaborators of a run.
type Deps struct {
	// Git performs repository steps. Nil skips them.
	Git      *vcs.Git
	Identity func(dir string) vcs.Identity
	Reporter *report.Reporter
	Logger   *logging.Logger
	Version  string
	Now      func() time.Time
}

// Result describes what a run did.
type Result struct {
	Root              string
	Ledger            *ledger.Ledger
	Dirs              []layout.Outcome
	Env               *envfile.Result
	Artifacts         []templates.Outcome
	License           license.ID
	LicenseWritten    bool
	GitInitialized    bool
	Committed         bool
	ProvenanceWritten bool
	Warnings          []error
}

// Run executes plan. The returned error is always fatal; recoverable
// problems are collected in Result.Warnings.
func Run(ctx context.Context, plan Plan, deps Deps) (*Result, error) {
	deps = withDefaults(deps, plan.Locale)
	log := deps.Logger
	rep := deps.Reporter
	cats := plan.categories()

	// Directories must exist before the root can be canonicalized.
	dirs, err := layout.Ensure(plan.Root, cats)
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if d.Created {
			rep.Directory(d.Category.Path, plan.Existing)
		}
	}

	root, err := layout.Canonical(plan.Root)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithProject(ctx, root)
	layoutCtx := logging.WithStep(ctx, "layout")
	for _, d := range dirs {
		log.Trace(layoutCtx, "directory", zap.String("path", d.Category.Path), zap.Bool("created", d.Created))
	}
	log.Debug(layoutCtx, "directories ensured", zap.Int("categories", len(dirs)))

	res := &Result{Root: root, Dirs: dirs}
	res.Ledger = ledger.New(plan.Prefix, layout.Bindings(cats))

	envRes, err := envfile.ReconcileFile(filepath.Join(plan.Root, envfile.FileName), res.Ledger, root)
	if err != nil {
		return nil, err
	}
	res.Env = envRes
	if envRes.Existed {
		rep.Updated(envfile.FileName)
	} else {
		rep.Created(envfile.FileName)
	}
	log.Debug(logging.WithStep(ctx, "envfile"), "env reconciled",
		zap.String("prefix", res.Ledger.Prefix()),
		zap.Int("kept", envRes.Stats.Kept),
		zap.Int("dropped", envRes.Stats.Dropped),
		zap.Int("generated", envRes.Stats.Generated))

	artifacts, err := templates.Materialize(plan.Root, root, plan.Locale)
	if err != nil {
		return nil, err
	}
	res.Artifacts = artifacts
	for _, a := range artifacts {
		log.Trace(logging.WithStep(ctx, "templates"), "artifact", zap.String("name", a.Name), zap.Bool("written", a.Written))
		switch {
		case a.Written:
			rep.Created(a.Name)
		case plan.Existing:
			rep.Skipped(a.Name)
		}
	}

	if err := writeLicense(ctx, plan, deps, res); err != nil {
		return nil, err
	}

	initRepo(ctx, plan, deps, res)
	recordProvenance(ctx, plan, deps, res)
	commit(ctx, plan, deps, res)

	rep.Summary(plan.Root, plan.Existing, ledger.Token(res.Ledger.Prefix()), report.Files{
		Usage:  templates.UsageFile,
		Readme: templates.ReadmeFile,
		Env:    envfile.FileName,
	})
	return res, nil
}

func withDefaults(deps Deps, loc i18n.Locale) Deps {
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.Reporter == nil {
		deps.Reporter = report.New(discard{}, discard{}, loc)
	}
	if deps.Identity == nil {
		deps.Identity = vcs.LookupIdentity
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Version == "" {
		deps.Version = "unknown"
	}
	return deps
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// writeLicense writes LICENSE for new projects only. The chosen identifier
// is recorded even when a LICENSE file was already there.
func writeLicense(ctx context.Context, plan Plan, deps Deps, res *Result) error {
	if plan.License == license.None {
		return nil
	}
	if plan.Existing {
		deps.Logger.Debug(logging.WithStep(ctx, "license"), "license ignored for existing project",
			zap.String("license", string(plan.License)))
		return nil
	}

	holder := deps.Identity(plan.Root).Name
	written, err := license.WriteIfAbsent(plan.Root, plan.License, deps.Now().Year(), holder)
	if err != nil {
		return err
	}
	res.License = plan.License
	res.LicenseWritten = written
	if written {
		deps.Reporter.License(string(plan.License))
	}
	return nil
}

func initRepo(ctx context.Context, plan Plan, deps Deps, res *Result) {
	if plan.Git == GitNone || deps.Git == nil {
		return
	}
	ctx = logging.WithStep(ctx, "vcs")

	err := deps.Git.Init(ctx, plan.Root)
	if err == nil {
		res.GitInitialized = true
		deps.Reporter.Success(i18n.GitInitialized)
		return
	}

	res.Warnings = append(res.Warnings, err)
	deps.Logger.Warn(ctx, "git init failed", zap.Error(err))
	if errors.Is(err, vcs.ErrGitNotFound) {
		deps.Reporter.Warn(i18n.GitNotFound, err.Error())
		return
	}
	deps.Reporter.Warn(i18n.GitInitFailed, errText(err))
}

// recordProvenance is best-effort: failures are logged, never reported.
func recordProvenance(ctx context.Context, plan Plan, deps Deps, res *Result) {
	rec := provenance.Record{
		Version:        deps.Version,
		Prefix:         ledger.Token(res.Ledger.Prefix()),
		GitInitialized: res.GitInitialized,
		License:        string(res.License),
		Dirs:           layout.Paths(plan.categories()),
	}
	written, err := provenance.Write(plan.Root, rec)
	ctx = logging.WithStep(ctx, "provenance")
	if err != nil {
		deps.Logger.Debug(ctx, "provenance not recorded", zap.Error(err))
		return
	}
	res.ProvenanceWritten = written
	deps.Logger.Debug(ctx, "provenance checked", zap.Bool("written", written))
}

func commit(ctx context.Context, plan Plan, deps Deps, res *Result) {
	if !res.GitInitialized {
		return
	}
	ctx = logging.WithStep(ctx, "vcs")

	if !deps.Identity(plan.Root).Complete() {
		res.Warnings = append(res.Warnings, errIdentityMissing)
		deps.Reporter.Warn(i18n.GitIdentityMissing)
		return
	}
	if plan.Git != GitInitAndCommit {
		return
	}

	err := deps.Git.CommitAll(ctx, plan.Root, vcs.CommitMessage)
	if err == nil {
		res.Committed = true
		deps.Reporter.Success(i18n.CommitSuccess)
		return
	}

	res.Warnings = append(res.Warnings, err)
	deps.Logger.Warn(ctx, "initial commit failed", zap.Error(err))
	var cmdErr *vcs.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Subcommand == "add" {
		deps.Reporter.Warn(i18n.GitAddFailed, errText(err))
		return
	}
	deps.Reporter.Warn(i18n.GitCommitFailed, errText(err))
}

var errIdentityMissing = errors.New("git user.name or user.email not configured")

func errText(err error) string {
	var cmdErr *vcs.CommandError
	if errors.As(err, &cmdErr) {
		if msg := strings.TrimSpace(cmdErr.Stderr); msg != "" {
			return msg
		}
	}
	return err.Error()
}
