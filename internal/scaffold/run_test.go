package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/license"
	"github.com/fyrsmithlabs/yuuskel/internal/logging"
	"github.com/fyrsmithlabs/yuuskel/internal/report"
	"github.com/fyrsmithlabs/yuuskel/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type fakeRunner struct {
	calls [][]string
	fail  map[string]error
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) error {
	f.calls = append(f.calls, args)
	if err, ok := f.fail[args[0]]; ok {
		return err
	}
	return nil
}

type harness struct {
	runner *fakeRunner
	out    bytes.Buffer
	errOut bytes.Buffer
	logger *logging.TestLogger
	ident  vcs.Identity
}

func newHarness(t *testing.T) *harness {
	return &harness{
		runner: &fakeRunner{},
		logger: logging.NewTestLogger(),
		ident:  vcs.Identity{Name: "Ada Lovelace", Email: "ada@example.com"},
	}
}

func (h *harness) deps() Deps {
	return Deps{
		Git:      vcs.New(h.runner, h.logger.Logger),
		Identity: func(string) vcs.Identity { return h.ident },
		Reporter: report.New(&h.out, &h.errOut, i18n.English),
		Logger:   h.logger.Logger,
		Version:  "1.2.3",
		Now:      func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func expectedEnv(root, prefix string) string {
	keys := []struct{ key, rel string }{
		{"INPUT_DIR", "input"},
		{"OUTPUT_DIR", "output"},
		{"ASSETS_DIR", "assets"},
		{"TEMP_ASSETS_DIR", "assets/temp"},
		{"SRC_DIR", "src"},
		{"SCRIPTS_DIR", "scripts"},
		{"CONFIGS_DIR", "configs"},
		{"DOCS_DIR", "docs"},
		{"NOTEBOOKS_DIR", "notebooks"},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "PROJECT_ROOT=%q\n", root)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s%s=%q\n", prefix, k.key, root+"/"+k.rel)
	}
	return b.String()
}

func TestRun_NewProject(t *testing.T) {
	h := newHarness(t)
	root := filepath.Join(t.TempDir(), "demo")
	plan := Plan{
		Root:    root,
		Locale:  i18n.English,
		Prefix:  "demo",
		License: license.MIT,
		Git:     GitInitAndCommit,
	}

	res, err := Run(context.Background(), plan, h.deps())
	require.NoError(t, err)

	for _, dir := range []string{"input", "output", "assets/temp", "src", "scripts", "configs", "docs", "notebooks"} {
		assert.DirExists(t, filepath.Join(root, dir))
	}
	assert.Equal(t, expectedEnv(res.Root, "DEMO_"), readFile(t, filepath.Join(root, ".env")))
	assert.FileExists(t, filepath.Join(root, "USAGE.md"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))
	assert.Contains(t, readFile(t, filepath.Join(root, "README.md")), res.Root+"/output")

	lic := readFile(t, filepath.Join(root, "LICENSE"))
	assert.Contains(t, lic, "Copyright (c) 2024 Ada Lovelace")
	assert.True(t, res.LicenseWritten)

	assert.True(t, res.GitInitialized)
	assert.True(t, res.Committed)
	assert.True(t, res.ProvenanceWritten)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", vcs.CommitMessage},
	}, h.runner.calls)

	var doc struct {
		Yuuskel struct {
			Version        string      `toml:"version"`
			Prefix         interface{} `toml:"prefix"`
			GitInitialized bool        `toml:"git_initialized"`
			License        interface{} `toml:"license"`
			Dirs           []string    `toml:"dirs"`
		} `toml:"yuuskel"`
	}
	_, err = toml.DecodeFile(filepath.Join(root, "yuuskel.toml"), &doc)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", doc.Yuuskel.Version)
	assert.Equal(t, "DEMO", doc.Yuuskel.Prefix)
	assert.True(t, doc.Yuuskel.GitInitialized)
	assert.Equal(t, "MIT", doc.Yuuskel.License)
	assert.Len(t, doc.Yuuskel.Dirs, 8)

	out := h.out.String()
	assert.Contains(t, out, "input")
	assert.Contains(t, out, "DEMO")
	assert.Empty(t, h.errOut.String())
}

func TestRun_NoPrefix(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()

	res, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.English}, h.deps())
	require.NoError(t, err)

	assert.Equal(t, expectedEnv(res.Root, ""), readFile(t, filepath.Join(root, ".env")))
	assert.Empty(t, h.runner.calls)
	assert.NoFileExists(t, filepath.Join(root, "LICENSE"))
}

func TestRun_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	root := filepath.Join(t.TempDir(), "proj")
	plan := Plan{Root: root, Locale: i18n.English, Prefix: "P", Git: GitInit}

	_, err := Run(context.Background(), plan, h.deps())
	require.NoError(t, err)
	env1 := readFile(t, filepath.Join(root, ".env"))
	prov1 := readFile(t, filepath.Join(root, "yuuskel.toml"))

	plan.Existing = true
	plan.Git = GitNone
	h.out.Reset()
	res, err := Run(context.Background(), plan, h.deps())
	require.NoError(t, err)

	assert.Equal(t, env1, readFile(t, filepath.Join(root, ".env")))
	assert.Equal(t, prov1, readFile(t, filepath.Join(root, "yuuskel.toml")))
	assert.False(t, res.ProvenanceWritten)
	assert.True(t, res.Env.Existed)
	for _, d := range res.Dirs {
		assert.False(t, d.Created, d.Category.Path)
	}
	assert.Contains(t, h.out.String(), "Updating: .env")
	assert.Contains(t, h.out.String(), "USAGE.md")
}

func TestRun_PreservesForeignEnvLines(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	existing := "# keep me\nAPI_KEY=secret\nP_SRC_DIR=\"/old\"\n\nOTHER=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(existing), 0o644))

	res, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.English, Prefix: "P"}, h.deps())
	require.NoError(t, err)

	got := readFile(t, filepath.Join(root, ".env"))
	assert.True(t, strings.HasPrefix(got, "# keep me\nAPI_KEY=secret\n\nOTHER=1\n"), got)
	assert.NotContains(t, got, "/old")
	assert.Equal(t, 1, res.Env.Stats.Dropped)
	assert.Equal(t, 4, res.Env.Stats.Kept)
}

func TestRun_ExistingProjectIgnoresLicense(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()

	res, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.English, License: license.MIT}, h.deps())
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "LICENSE"))
	assert.Equal(t, license.None, res.License)
}

func TestRun_GitMissingIsWarning(t *testing.T) {
	h := newHarness(t)
	h.runner.fail = map[string]error{"init": fmt.Errorf("%w: exec: not found", vcs.ErrGitNotFound)}
	root := filepath.Join(t.TempDir(), "g")

	res, err := Run(context.Background(), Plan{Root: root, Locale: i18n.English, Git: GitInitAndCommit}, h.deps())
	require.NoError(t, err)

	assert.False(t, res.GitInitialized)
	assert.False(t, res.Committed)
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, [][]string{{"init"}}, h.runner.calls)
	assert.Contains(t, h.errOut.String(), "is Git installed?")
	assert.Contains(t, readFile(t, filepath.Join(root, "yuuskel.toml")), "git_initialized = false")
	h.logger.AssertLogged(t, zapcore.WarnLevel, "git init failed")
}

func TestRun_IdentityMissingSkipsCommit(t *testing.T) {
	h := newHarness(t)
	h.ident = vcs.Identity{Name: "only-name"}
	root := filepath.Join(t.TempDir(), "g")

	res, err := Run(context.Background(), Plan{Root: root, Locale: i18n.English, Git: GitInitAndCommit}, h.deps())
	require.NoError(t, err)

	assert.True(t, res.GitInitialized)
	assert.False(t, res.Committed)
	assert.Equal(t, [][]string{{"init"}}, h.runner.calls)
	assert.Contains(t, h.errOut.String(), "git config --global user.email")
}

func TestRun_AddFailureIsWarning(t *testing.T) {
	h := newHarness(t)
	h.runner.fail = map[string]error{"add": &vcs.CommandError{Subcommand: "add", Stderr: "fatal: nope\n"}}
	root := filepath.Join(t.TempDir(), "g")

	res, err := Run(context.Background(), Plan{Root: root, Locale: i18n.English, Git: GitInitAndCommit}, h.deps())
	require.NoError(t, err)

	assert.True(t, res.GitInitialized)
	assert.False(t, res.Committed)
	assert.Contains(t, h.errOut.String(), "fatal: nope")
}

func TestRun_FileBlockingDirectoryIsFatal(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), []byte("x"), 0o644))

	_, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.English}, h.deps())
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(root, ".env"))
}

func TestRun_NilDepsUseDefaults(t *testing.T) {
	root := t.TempDir()

	res, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.Chinese}, Deps{})
	require.NoError(t, err)
	assert.True(t, res.ProvenanceWritten)
	assert.Contains(t, readFile(t, filepath.Join(root, "yuuskel.toml")), `version = "unknown"`)
}

func TestRun_TracesOutcomes(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()

	_, err := Run(context.Background(), Plan{Root: root, Existing: true, Locale: i18n.English}, h.deps())
	require.NoError(t, err)

	h.logger.AssertLogged(t, logging.TraceLevel, "directory")
	h.logger.AssertField(t, "directory", "path", "input")
	h.logger.AssertField(t, "artifact", "name", "USAGE.md")
	h.logger.AssertField(t, "artifact", "step", "templates")
}
