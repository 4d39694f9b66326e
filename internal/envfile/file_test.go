package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileFile_AbsentBehavesAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	l := twoDirLedger("APP")

	res, err := ReconcileFile(path, l, "/p")
	require.NoError(t, err)
	assert.False(t, res.Existed)
	assert.Equal(t, 3, res.Stats.Generated)
	assert.Equal(t, 0, res.Stats.Dropped)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Reconcile("", l, l.Assignments("/p")), string(data))
}

func TestReconcileFile_RewritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("API_KEY=s3cr3t\nAPP_INPUT_DIR=/old\n"), 0o600))
	l := twoDirLedger("APP")

	res, err := ReconcileFile(path, l, "/p")
	require.NoError(t, err)
	assert.True(t, res.Existed)
	assert.Equal(t, Stats{Kept: 1, Dropped: 1, Generated: 3}, res.Stats)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=s3cr3t\nPROJECT_ROOT=\"/p\"\nAPP_INPUT_DIR=\"/p/input\"\nAPP_OUTPUT_DIR=\"/p/output\"\n", string(data))

	// Second run is a fixed point on disk.
	_, err = ReconcileFile(path, l, "/p")
	require.NoError(t, err)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestReconcileFile_UnreadablePathIsFatal(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := ReconcileFile(path, twoDirLedger(""), "/p")
	assert.Error(t, err)
}
