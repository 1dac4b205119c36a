package plan

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner records git invocations and fails commits by index
type scriptedRunner struct {
	calls       [][]string
	commitCount int
	failCommit  map[int]string // commit index -> output for the failure
}

func (r *scriptedRunner) Run(dir, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))

	if len(args) > 0 && args[0] == "commit" {
		idx := r.commitCount
		r.commitCount++
		if output, ok := r.failCommit[idx]; ok {
			return output, fmt.Errorf("exit status 1")
		}
		return "", nil
	}
	if len(args) > 0 && args[0] == "rev-parse" {
		return fmt.Sprintf("abc%04d", r.commitCount), nil
	}
	return "", nil
}

func testPlan() models.CommitPlan {
	return models.CommitPlan{Groups: []models.ChangeGroup{
		{
			Category: models.CategoryConfig,
			Members:  []models.ChangeRecord{models.NewChangeRecord(".gitignore", models.StatusModified, "")},
		},
		{
			Category: models.CategoryFeature,
			Summary:  "internal/auth",
			Members: []models.ChangeRecord{
				models.NewChangeRecord("internal/auth/login.go", models.StatusAdded, ""),
				models.NewChangeRecord("internal/auth/token.go", models.StatusAdded, ""),
			},
		},
		{
			Category: models.CategoryDocs,
			Members:  []models.ChangeRecord{models.NewChangeRecord("README.md", models.StatusModified, "")},
		},
	}}
}

func newTestSequencer(runner *scriptedRunner, opts ...SequencerOption) *Sequencer {
	committer := git.NewCommitter("/repo", git.WithRunner(runner))
	return NewSequencer(committer, opts...)
}

func TestApplyCommitsEveryGroupInOrder(t *testing.T) {
	runner := &scriptedRunner{}
	seq := newTestSequencer(runner)

	var progressed []models.Category
	results, err := seq.Apply(testPlan(), func(index int, group models.ChangeGroup) {
		progressed = append(progressed, group.Category)
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []models.Category{
		models.CategoryConfig,
		models.CategoryFeature,
		models.CategoryDocs,
	}, progressed)

	for _, res := range results {
		assert.True(t, models.IsCommitted(res.Status))
		assert.NotEmpty(t, models.CommitHash(res.Status))
		assert.NotEmpty(t, res.Subject)
	}

	// Each group stages only its own paths before committing
	var staged [][]string
	for _, call := range runner.calls {
		if call[1] == "add" {
			staged = append(staged, call[4:]) // after "git add -A --"
		}
	}
	require.Len(t, staged, 3)
	assert.Equal(t, []string{".gitignore"}, staged[0])
	assert.Equal(t, []string{"internal/auth/login.go", "internal/auth/token.go"}, staged[1])
	assert.Equal(t, []string{"README.md"}, staged[2])
}

func TestApplyHaltsOnRejection(t *testing.T) {
	runner := &scriptedRunner{
		failCommit: map[int]string{1: "pre-commit hook failed"},
	}
	seq := newTestSequencer(runner)

	results, err := seq.Apply(testPlan(), nil)
	require.Error(t, err)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 1, rejected.Index)
	assert.Equal(t, 0, rejected.LastApplied)
	assert.Equal(t, models.CategoryFeature, rejected.Group.Category)

	require.Len(t, results, 3)
	assert.True(t, models.IsCommitted(results[0].Status))
	assert.True(t, models.IsRejected(results[1].Status))
	assert.True(t, models.IsSkipped(results[2].Status))
	assert.Equal(t, "not attempted after rejection", models.StatusReason(results[2].Status))

	// The third group is never attempted
	assert.Equal(t, 2, runner.commitCount)
}

func TestApplyFirstCommitRejected(t *testing.T) {
	runner := &scriptedRunner{
		failCommit: map[int]string{0: "gpg failed to sign the data"},
	}
	seq := newTestSequencer(runner)

	_, err := seq.Apply(testPlan(), nil)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 0, rejected.Index)
	assert.Equal(t, -1, rejected.LastApplied)
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	runner := &scriptedRunner{}
	seq := newTestSequencer(runner, WithDryRun(true))

	results, err := seq.Apply(testPlan(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, res := range results {
		assert.True(t, models.IsCommitted(res.Status))
		assert.Empty(t, models.CommitHash(res.Status))
	}
	assert.Empty(t, runner.calls)
}

func TestApplyCommitMessageRespectsLimits(t *testing.T) {
	runner := &scriptedRunner{}
	seq := newTestSequencer(runner, WithLimits(40, 60))

	_, err := seq.Apply(testPlan(), nil)
	require.NoError(t, err)

	for _, call := range runner.calls {
		if call[1] != "commit" {
			continue
		}
		require.Equal(t, "-m", call[2])
		message := call[3]
		subject := strings.SplitN(message, "\n", 2)[0]
		assert.LessOrEqual(t, len(subject), 40)
	}
}

func TestApplyNothingToCommitIsRejection(t *testing.T) {
	// A group whose staged diff turns out empty halts the sequence like
	// any other rejected commit
	runner := &scriptedRunner{
		failCommit: map[int]string{0: "nothing to commit, working tree clean"},
	}
	seq := newTestSequencer(runner)

	results, err := seq.Apply(testPlan(), nil)
	require.Error(t, err)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.True(t, errors.Is(rejected.Err, git.ErrNothingToCommit))
	assert.True(t, models.IsRejected(results[0].Status))
}
