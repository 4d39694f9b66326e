// Package vcs drives the external git binary for repository setup and reads
// the committer identity through go-git's config scopes.
//
// Every failure here is recoverable from the caller's point of view: the
// scaffolded project is complete without a repository.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fyrsmithlabs/yuuskel/internal/logging"
	"go.uber.org/zap"
)

// CommitMessage is used for the initial commit.
const CommitMessage = "chore: initialize project with yuuskel"

// ErrGitNotFound is returned when the git binary cannot be started.
var ErrGitNotFound = errors.New("git executable not found")

// CommandError is a git subcommand that ran and exited non-zero.
type CommandError struct {
	Subcommand string
	Stderr     string
	Err        error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", e.Subcommand, msg)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes git with args in dir.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecRunner runs a real git binary.
type ExecRunner struct {
	// Binary defaults to "git".
	Binary string
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		sub := ""
		if len(args) > 0 {
			sub = args[0]
		}
		return &CommandError{Subcommand: sub, Stderr: stderr.String(), Err: err}
	}
	return fmt.Errorf("%w: %v", ErrGitNotFound, err)
}

// Git performs the repository steps of a run.
type Git struct {
	runner Runner
	logger *logging.Logger
}

// New returns a Git using runner. A nil logger discards diagnostics.
func New(runner Runner, logger *logging.Logger) *Git {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Git{runner: runner, logger: logger.Named("vcs")}
}

// Init runs `git init` in dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	g.logger.Debug(ctx, "git init", zap.String("dir", dir))
	return g.runner.Run(ctx, dir, "init")
}

// CommitAll stages everything in dir and commits it with message.
func (g *Git) CommitAll(ctx context.Context, dir, message string) error {
	g.logger.Debug(ctx, "git add", zap.String("dir", dir))
	if err := g.runner.Run(ctx, dir, "add", "."); err != nil {
		return err
	}
	g.logger.Debug(ctx, "git commit", zap.String("message", message))
	return g.runner.Run(ctx, dir, "commit", "-m", message)
}
