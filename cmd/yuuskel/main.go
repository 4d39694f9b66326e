// Package main implements the yuuskel CLI, which scaffolds a data-project
// directory layout with a reconciled .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fyrsmithlabs/yuuskel/internal/config"
	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/logging"
	"github.com/fyrsmithlabs/yuuskel/internal/prompt"
	"github.com/fyrsmithlabs/yuuskel/internal/report"
	"github.com/fyrsmithlabs/yuuskel/internal/scaffold"
	"github.com/fyrsmithlabs/yuuskel/internal/vcs"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

// options are the command-line flags.
type options struct {
	lang       string
	here       bool
	name       string
	prefix     string
	noPrefix   bool
	license    string
	git        bool
	commit     bool
	yes        bool
	configPath string
	verbose    bool
}

// app carries the collaborators a run needs, so tests can replace them.
type app struct {
	getwd       func() (string, error)
	interactive func(in io.Reader) bool
	newPrompter func(in io.Reader, out io.Writer) Prompter
	runner      vcs.Runner
	identity    func(dir string) vcs.Identity

	reporter *report.Reporter
}

func defaultApp() *app {
	return &app{
		getwd:       os.Getwd,
		interactive: isTerminal,
		newPrompter: func(in io.Reader, out io.Writer) Prompter {
			return prompt.NewTerminal(in, out)
		},
		runner:   vcs.ExecRunner{},
		identity: vcs.LookupIdentity,
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	os.Exit(execute(context.Background(), defaultApp(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, a *app, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCancelled):
		a.reporterOr(out, errOut).Cancelled()
		return 0
	default:
		a.reporterOr(out, errOut).Failure(err)
		return 1
	}
}

func (a *app) reporterOr(out, errOut io.Writer) *report.Reporter {
	if a.reporter == nil {
		a.reporter = report.New(out, errOut, i18n.English)
	}
	return a.reporter
}

func newRootCmd(a *app) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "yuuskel",
		Short: "Scaffold a data project layout with a managed .env file",
		Long: `yuuskel creates a standard directory layout for a data project and
writes a .env file binding each directory to an absolute path.

Running it again in an existing project only fills in what is missing:
directories are added, the managed .env keys are regenerated, and every
other line of .env is kept as it was.

Examples:
  # Ask every question interactively
  yuuskel

  # Create ./analysis with a prefix, non-interactively
  yuuskel --name analysis --prefix ANALYSIS --yes

  # Refresh the current directory, committing the result
  yuuskel --here --no-prefix --git --commit --yes`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.lang, "lang", "", "interface language (en, zh)")
	f.BoolVar(&opts.here, "here", false, "initialize the current directory")
	f.StringVar(&opts.name, "name", "", "create or reuse the project folder NAME")
	f.StringVar(&opts.prefix, "prefix", "", "prefix for generated variable names")
	f.BoolVar(&opts.noPrefix, "no-prefix", false, "generate variable names without a prefix")
	f.StringVar(&opts.license, "license", "", "license for a new project (MIT, Apache-2.0, ..., none)")
	f.BoolVar(&opts.git, "git", false, "initialize a git repository")
	f.BoolVar(&opts.commit, "commit", false, "make an initial commit (implies --git)")
	f.BoolVarP(&opts.yes, "yes", "y", false, "do not prompt; undecided choices take their defaults")
	f.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/yuuskel/config.yaml)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.MarkFlagsMutuallyExclusive("here", "name")
	cmd.MarkFlagsMutuallyExclusive("prefix", "no-prefix")
	return cmd
}

func (a *app) run(cmd *cobra.Command, opts options) error {
	ctx := cmd.Context()
	in, out, errOut := cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts.verbose, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctx = logging.WithLogger(ctx, logger)

	cwd, err := a.getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	d := &decider{
		opts:     opts,
		cfg:      cfg,
		cwd:      cwd,
		identity: a.identity,
		out:      out,
		errOut:   errOut,
	}
	if !opts.yes && a.interactive(in) {
		d.prompter = a.newPrompter(in, out)
	}

	plan, err := d.decide()
	if d.reporter != nil {
		a.reporter = d.reporter
	}
	if err != nil {
		return err
	}
	logger.Debug(ctx, "plan decided",
		zap.String("root", plan.Root),
		zap.Bool("existing", plan.Existing),
		zap.String("locale", string(plan.Locale)),
		zap.String("prefix", plan.Prefix),
		zap.String("license", string(plan.License)),
		zap.Int("git", int(plan.Git)))

	_, err = scaffold.Run(ctx, plan, scaffold.Deps{
		Git:      vcs.New(a.runner, logger),
		Identity: a.identity,
		Reporter: a.reporter,
		Logger:   logger,
		Version:  version,
	})
	return err
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) (*logging.Logger, error) {
	lc, err := cfg.Logging()
	if err != nil {
		return nil, err
	}
	if verbose && lc.Level > zapcore.DebugLevel {
		lc.Level = zapcore.DebugLevel
	}
	return logging.NewLogger(lc, w)
}
