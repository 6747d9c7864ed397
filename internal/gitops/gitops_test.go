package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configureIdentity sets a repo-local committer identity so commits work on
// machines without a global git config.
func configureIdentity(t *testing.T, dir string) {
	t.Helper()
	for _, kv := range [][2]string{
		{"user.name", "Test Committer"},
		{"user.email", "committer@example.com"},
	} {
		cmd := exec.Command("git", "config", kv[0], kv[1])
		cmd.Dir = dir
		require.NoError(t, cmd.Run())
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestHasChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	configureIdentity(t, dir)

	changed, err := HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed, "fresh repo should be clean")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "wallets.csv"), []byte("id,name\n"), 0o644))
	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = CommitAll(dir, "tx: record wallet", "Test Author", "test@example.com")
	require.NoError(t, err)

	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed, "committed repo should be clean")
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	configureIdentity(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgets.csv"), []byte("id,category\n"), 0o644))

	hash, err := CommitAll(dir, "budget: add Food", "Test Author", "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "budget: add Food")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Test Author <test@example.com>")
}
