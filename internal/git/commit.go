package git

import "errors"

// ErrNothingToCommit indicates a commit was attempted with no staged changes
var ErrNothingToCommit = errors.New("nothing to commit")

// Committer records commits through the git CLI so that hooks, signing and
// user config all apply exactly as they would for a hand-typed commit.
type Committer struct {
	root   string
	runner CommandRunner
}

// CommitterOption configures a Committer
type CommitterOption func(*Committer)

// WithRunner sets a custom command runner. This is primarily used in tests
// to record invocations without touching a real repository.
func WithRunner(runner CommandRunner) CommitterOption {
	return func(c *Committer) {
		c.runner = runner
	}
}

// NewCommitter creates a Committer for the repository rooted at root
func NewCommitter(root string, opts ...CommitterOption) *Committer {
	c := &Committer{
		root:   root,
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stage stages the given paths, including deletions
func (c *Committer) Stage(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "-A", "--"}, paths...)
	if output, err := c.runner.Run(c.root, "git", args...); err != nil {
		return &GitError{Command: "add", Output: output}
	}
	return nil
}

// Commit records the staged changes and returns the new short hash.
// Returns ErrNothingToCommit when the staged diff is empty; any other
// non-zero result (hook failure, signing failure) surfaces as GitError.
func (c *Committer) Commit(message string) (string, error) {
	output, err := c.runner.Run(c.root, "git", "commit", "-m", message)
	if err != nil {
		if IsNothingToCommit(output) {
			return "", ErrNothingToCommit
		}
		return "", &GitError{Command: "commit", Output: output}
	}

	hash, err := c.runner.Run(c.root, "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		// The commit itself succeeded; report it without a hash
		return "", nil
	}
	return hash, nil
}
