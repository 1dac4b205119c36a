package git

import (
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Repository is a read-only view of a git repository's working tree
type Repository struct {
	root string
	repo *gogit.Repository
}

// Open opens the repository containing path, walking up parent directories
// the same way git does. Returns RepositoryUnavailableError if no repository
// is found.
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &RepositoryUnavailableError{Path: path, Err: err}
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, &RepositoryUnavailableError{Path: absPath, Err: err}
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to organize
		return nil, &RepositoryUnavailableError{Path: absPath, Err: err}
	}

	return &Repository{
		root: wt.Filesystem.Root(),
		repo: repo,
	}, nil
}

// IsGitRepo checks if the path is inside a git repository
func IsGitRepo(path string) bool {
	_, err := Open(path)
	return err == nil
}

// Root returns the repository root directory
func (r *Repository) Root() string {
	return r.root
}

// Name returns the repository's directory name for display
func (r *Repository) Name() string {
	return filepath.Base(r.root)
}

// RepositoryUnavailableError indicates the path is not a usable git repository
type RepositoryUnavailableError struct {
	Path string
	Err  error
}

func (e *RepositoryUnavailableError) Error() string {
	return "not a git repository: " + e.Path
}

func (e *RepositoryUnavailableError) Unwrap() error {
	return e.Err
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// IsNothingToCommit reports whether command output indicates an empty commit
func IsNothingToCommit(output string) bool {
	return strings.Contains(output, "nothing to commit") ||
		strings.Contains(output, "nothing added to commit")
}
