package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_WritesAllWhenAbsent(t *testing.T) {
	dir := t.TempDir()

	outcomes, err := Materialize(dir, "/abs/proj", i18n.English)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Written, o.Name)
	}

	readme, err := os.ReadFile(filepath.Join(dir, ReadmeFile))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "/abs/proj/output")
	assert.NotContains(t, string(readme), OutputPlaceholder)

	ignore, err := os.ReadFile(filepath.Join(dir, GitignoreFile))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), ".env\n")
}

func TestMaterialize_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReadmeFile), []byte("mine"), 0o644))

	outcomes, err := Materialize(dir, "/p", i18n.English)
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, o := range outcomes {
		byName[o.Name] = o.Written
	}
	assert.Equal(t, map[string]bool{UsageFile: true, ReadmeFile: false, GitignoreFile: true}, byName)

	data, err := os.ReadFile(filepath.Join(dir, ReadmeFile))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestMaterialize_Localized(t *testing.T) {
	dir := t.TempDir()
	_, err := Materialize(dir, "/p", i18n.Chinese)
	require.NoError(t, err)

	usage, err := os.ReadFile(filepath.Join(dir, UsageFile))
	require.NoError(t, err)
	assert.Contains(t, string(usage), "项目使用指南")
}

func TestMaterialize_MissingDirFails(t *testing.T) {
	_, err := Materialize(filepath.Join(t.TempDir(), "missing"), "/p", i18n.English)
	assert.Error(t, err)
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "out: /x/output, again /x/output", Substitute("out: {{output_dir}}, again {{output_dir}}", "/x/output"))
	assert.Equal(t, "no placeholder", Substitute("no placeholder", "/x"))
}
