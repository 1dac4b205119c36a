package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Exclude ExcludeConfig `toml:"exclude"`
	Commits CommitsConfig `toml:"commits"`
	Update  UpdateConfig  `toml:"update"`

	// Compiled from Commits.Order (not serialized)
	commitOrder []models.Category
}

type ExcludeConfig struct {
	Rules      []ExcludeRule `toml:"rules"`
	SecretScan bool          `toml:"secret_scan"`
}

// ExcludeRule pairs a doublestar glob with the reason it exists
type ExcludeRule struct {
	Pattern string `toml:"pattern"`
	Reason  string `toml:"reason"`
}

type CommitsConfig struct {
	// Order lists every category exactly once, first committed first
	Order        []string `toml:"order"`
	SubjectLimit int      `toml:"subject_limit"`
	BodyWrap     int      `toml:"body_wrap"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Exclude: ExcludeConfig{
			Rules: []ExcludeRule{
				{Pattern: "**/.env*", Reason: "environment files often hold credentials"},
				{Pattern: "**/*.pem", Reason: "PEM-encoded keys"},
				{Pattern: "**/*.key", Reason: "private key material"},
				{Pattern: "**/*.p12", Reason: "PKCS#12 keystores"},
				{Pattern: "**/id_rsa*", Reason: "SSH private keys"},
				{Pattern: "**/credentials*", Reason: "credential files"},
				{Pattern: "**/node_modules/**", Reason: "dependency artifacts"},
				{Pattern: "**/vendor/**", Reason: "vendored dependencies"},
				{Pattern: "**/dist/**", Reason: "build output"},
				{Pattern: "**/build/**", Reason: "build output"},
				{Pattern: "**/*.log", Reason: "log files"},
			},
			SecretScan: true,
		},
		Commits: CommitsConfig{
			Order: []string{
				"config", "refactor", "feature", "fix", "test", "docs", "style",
			},
			SubjectLimit: 50,
			BodyWrap:     72,
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.commitsort",
		},
	}
}

// Path returns the location of the config file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcs.toml"), nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := DefaultConfig()
		if err := cfg.compileOrder(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := cfg.compileOrder(); err != nil {
				return nil, err
			}
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	return cfg, nil
}

// LoadFrom reads a config file at an explicit path.
// Defaults fill in anything the file does not set.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.compileOrder(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// compileOrder parses Commits.Order and rejects anything that is not a
// permutation of all categories
func (c *Config) compileOrder() error {
	if len(c.Commits.Order) == 0 {
		c.commitOrder = models.DefaultCommitOrder
		return nil
	}

	seen := make(map[models.Category]bool)
	order := make([]models.Category, 0, len(c.Commits.Order))
	for _, name := range c.Commits.Order {
		cat, err := models.ParseCategory(name)
		if err != nil {
			return fmt.Errorf("invalid commits.order entry: %w", err)
		}
		if seen[cat] {
			return fmt.Errorf("commits.order lists %q twice", name)
		}
		seen[cat] = true
		order = append(order, cat)
	}

	if len(order) != len(models.AllCategories) {
		return fmt.Errorf("commits.order must list all %d categories, got %d",
			len(models.AllCategories), len(order))
	}

	c.commitOrder = order
	return nil
}

// CommitOrder returns the compiled category order
func (c *Config) CommitOrder() []models.Category {
	// Safe even if compileOrder() was never called
	if c.commitOrder == nil {
		return models.DefaultCommitOrder
	}
	return c.commitOrder
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path
func (c *Config) SaveTo(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
