package git

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures invocations and plays back scripted responses
type recordingRunner struct {
	calls     [][]string
	dirs      []string
	responses []response
}

type response struct {
	output string
	err    error
}

func (r *recordingRunner) Run(dir, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	r.dirs = append(r.dirs, dir)

	if len(r.responses) == 0 {
		return "", nil
	}
	resp := r.responses[0]
	r.responses = r.responses[1:]
	return resp.output, resp.err
}

func TestStage(t *testing.T) {
	runner := &recordingRunner{}
	c := NewCommitter("/repo", WithRunner(runner))

	require.NoError(t, c.Stage("a.go", "dir/b.go"))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"git", "add", "-A", "--", "a.go", "dir/b.go"}, runner.calls[0])
	assert.Equal(t, "/repo", runner.dirs[0])
}

func TestStageNoPaths(t *testing.T) {
	runner := &recordingRunner{}
	c := NewCommitter("/repo", WithRunner(runner))

	require.NoError(t, c.Stage())
	assert.Empty(t, runner.calls)
}

func TestStageFailure(t *testing.T) {
	runner := &recordingRunner{
		responses: []response{{output: "fatal: pathspec did not match", err: fmt.Errorf("exit status 128")}},
	}
	c := NewCommitter("/repo", WithRunner(runner))

	err := c.Stage("missing.go")
	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, "add", gitErr.Command)
	assert.Contains(t, gitErr.Output, "pathspec")
}

func TestCommitReturnsShortHash(t *testing.T) {
	runner := &recordingRunner{
		responses: []response{
			{output: "[main abc1234] Fix auth/login.go"},
			{output: "abc1234"},
		},
	}
	c := NewCommitter("/repo", WithRunner(runner))

	hash, err := c.Commit("Fix auth/login.go")
	require.NoError(t, err)
	assert.Equal(t, "abc1234", hash)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"git", "commit", "-m", "Fix auth/login.go"}, runner.calls[0])
	assert.Equal(t, []string{"git", "rev-parse", "--short", "HEAD"}, runner.calls[1])
}

func TestCommitNothingToCommit(t *testing.T) {
	runner := &recordingRunner{
		responses: []response{
			{output: "nothing to commit, working tree clean", err: fmt.Errorf("exit status 1")},
		},
	}
	c := NewCommitter("/repo", WithRunner(runner))

	_, err := c.Commit("Fix something")
	assert.True(t, errors.Is(err, ErrNothingToCommit))
}

func TestCommitHookFailure(t *testing.T) {
	runner := &recordingRunner{
		responses: []response{
			{output: "pre-commit hook exited with code 1", err: fmt.Errorf("exit status 1")},
		},
	}
	c := NewCommitter("/repo", WithRunner(runner))

	_, err := c.Commit("Fix something")
	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, "commit", gitErr.Command)
}

func TestCommitHashLookupFailure(t *testing.T) {
	// The commit itself succeeded; a failed hash lookup is not an error
	runner := &recordingRunner{
		responses: []response{
			{output: "[main abc1234] Fix auth/login.go"},
			{output: "", err: fmt.Errorf("exit status 128")},
		},
	}
	c := NewCommitter("/repo", WithRunner(runner))

	hash, err := c.Commit("Fix auth/login.go")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestIsNothingToCommit(t *testing.T) {
	assert.True(t, IsNothingToCommit("nothing to commit, working tree clean"))
	assert.True(t, IsNothingToCommit("nothing added to commit but untracked files present"))
	assert.False(t, IsNothingToCommit("pre-commit hook failed"))
}
