package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/models"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initScanRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	write := func(path, content string) {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}

	write("README.md", "# Project\n")
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&gogit.AddOptions{All: true}))
	_, err = wt.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// Working tree changes the scan should pick up
	write("README.md", "# Project\n\nDocs update.\n")
	write("internal/auth/login.go", "package auth\n")
	write(".github/workflows/ci.yml", "on: push\n")
	write(".env", "API_KEY=abc123\n")

	return dir
}

func TestScanRepository(t *testing.T) {
	dir := initScanRepo(t)

	scan, err := ScanRepository(dir, config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), scan.RepoName)

	// .env is excluded, the rest are kept
	require.Len(t, scan.Excluded, 1)
	assert.Equal(t, ".env", scan.Excluded[0].Record.Path)
	for _, rec := range scan.Records {
		assert.NotEqual(t, ".env", rec.Path)
	}

	// Groups come back in commit order: config before feature before docs
	var cats []models.Category
	for _, g := range scan.Plan.Groups {
		cats = append(cats, g.Category)
	}
	assert.Equal(t, []models.Category{
		models.CategoryConfig,
		models.CategoryFeature,
		models.CategoryDocs,
	}, cats)

	// Excluded paths never reach the plan
	for _, g := range scan.Plan.Groups {
		for _, m := range g.Members {
			assert.NotEqual(t, ".env", m.Path)
		}
	}
}

func TestScanRepositoryCleanTree(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("API_KEY=abc123\n"), 0644))

	scan, err := ScanRepository(dir, config.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNothingToCommit))

	// The scan still reports why there was nothing to commit
	require.NotNil(t, scan)
	require.Len(t, scan.Excluded, 1)
	assert.Equal(t, ".env", scan.Excluded[0].Record.Path)
}

func TestScanRepositoryNotARepo(t *testing.T) {
	_, err := ScanRepository(t.TempDir(), config.DefaultConfig())

	var unavailable *git.RepositoryUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
