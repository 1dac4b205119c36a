package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Exclude.SecretScan)
	assert.NotEmpty(t, cfg.Exclude.Rules)
	for _, rule := range cfg.Exclude.Rules {
		assert.NotEmpty(t, rule.Pattern)
		assert.NotEmpty(t, rule.Reason)
	}

	assert.Equal(t, 50, cfg.Commits.SubjectLimit)
	assert.Equal(t, 72, cfg.Commits.BodyWrap)
	assert.Len(t, cfg.Commits.Order, len(models.AllCategories))
	assert.True(t, cfg.Update.Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attcs.toml")

	cfg := DefaultConfig()
	cfg.Exclude.SecretScan = false
	cfg.Commits.SubjectLimit = 60
	cfg.Commits.Order = []string{"docs", "style", "config", "refactor", "feature", "fix", "test"}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.False(t, loaded.Exclude.SecretScan)
	assert.Equal(t, 60, loaded.Commits.SubjectLimit)
	assert.Equal(t, cfg.Commits.Order, loaded.Commits.Order)
	assert.Equal(t, models.CategoryDocs, loaded.CommitOrder()[0])
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadFromPartialFile(t *testing.T) {
	// Unset fields keep their defaults
	path := filepath.Join(t.TempDir(), "attcs.toml")
	content := "[commits]\nsubject_limit = 42\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Commits.SubjectLimit)
	assert.Equal(t, 72, cfg.Commits.BodyWrap)
	assert.True(t, cfg.Exclude.SecretScan)
	assert.NotEmpty(t, cfg.Exclude.Rules)
}

func TestCommitOrderValidation(t *testing.T) {
	writeOrder := func(t *testing.T, order string) string {
		path := filepath.Join(t.TempDir(), "attcs.toml")
		content := "[commits]\norder = " + order + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("unknown category", func(t *testing.T) {
		path := writeOrder(t, `["config", "refactor", "feature", "fix", "test", "docs", "chore"]`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "unknown category")
	})

	t.Run("duplicate category", func(t *testing.T) {
		path := writeOrder(t, `["config", "config", "feature", "fix", "test", "docs", "style"]`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "twice")
	})

	t.Run("missing category", func(t *testing.T) {
		path := writeOrder(t, `["config", "refactor", "feature"]`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "must list all")
	})

	t.Run("full permutation", func(t *testing.T) {
		path := writeOrder(t, `["style", "docs", "test", "fix", "feature", "refactor", "config"]`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		order := cfg.CommitOrder()
		assert.Equal(t, models.CategoryStyle, order[0])
		assert.Equal(t, models.CategoryConfig, order[6])
	})
}

func TestCommitOrderDefaultWithoutCompile(t *testing.T) {
	// A zero Config still yields a usable order
	var cfg Config
	assert.Equal(t, models.DefaultCommitOrder, cfg.CommitOrder())
}

func TestShouldCheckForUpdate(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Update.LastCheck = time.Time{}
	assert.True(t, cfg.ShouldCheckForUpdate())

	cfg.RecordUpdateCheck()
	assert.False(t, cfg.ShouldCheckForUpdate())

	cfg.Update.LastCheck = time.Now().Add(-25 * time.Hour)
	assert.True(t, cfg.ShouldCheckForUpdate())

	cfg.Update.Enabled = false
	assert.False(t, cfg.ShouldCheckForUpdate())
}
