package plan

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/models"
)

// Sequencer applies a commit plan strictly in order: stage a group's paths,
// commit, move to the next group. Each commit changes the baseline the next
// group is committed against, so nothing runs concurrently.
type Sequencer struct {
	committer    *git.Committer
	subjectLimit int
	bodyWrap     int
	dryRun       bool
}

// SequencerOption configures a Sequencer
type SequencerOption func(*Sequencer)

// WithLimits overrides the subject and body formatting limits
func WithLimits(subjectLimit, bodyWrap int) SequencerOption {
	return func(s *Sequencer) {
		s.subjectLimit = subjectLimit
		s.bodyWrap = bodyWrap
	}
}

// WithDryRun makes Apply report success without touching the repository
func WithDryRun(dryRun bool) SequencerOption {
	return func(s *Sequencer) {
		s.dryRun = dryRun
	}
}

// NewSequencer creates a Sequencer committing through committer
func NewSequencer(committer *git.Committer, opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		committer:    committer,
		subjectLimit: DefaultSubjectLimit,
		bodyWrap:     DefaultBodyWrap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply commits every group in plan order. progress, if non-nil, is called
// before each group is attempted.
//
// On a rejected commit Apply stops: prior commits stay recorded, the failed
// group gets a Rejected result, the rest are marked Skipped, and the returned
// error is a *RejectedError naming the failed group and the index of the last
// group that succeeded. Nothing is retried or rolled back.
func (s *Sequencer) Apply(plan models.CommitPlan, progress func(index int, group models.ChangeGroup)) ([]models.CommitResult, error) {
	results := make([]models.CommitResult, 0, len(plan.Groups))

	for i, group := range plan.Groups {
		if progress != nil {
			progress(i, group)
		}

		subject := Subject(group, s.subjectLimit)

		if s.dryRun {
			results = append(results, models.CommitResult{
				Group:   group,
				Status:  models.Committed(""),
				Subject: subject,
			})
			continue
		}

		hash, err := s.commitGroup(group)
		if err != nil {
			results = append(results, models.CommitResult{
				Group:   group,
				Status:  models.RejectedCommit(err.Error()),
				Subject: subject,
			})
			for _, rest := range plan.Groups[i+1:] {
				results = append(results, models.CommitResult{
					Group:   rest,
					Status:  models.SkippedCommit("not attempted after rejection"),
					Subject: Subject(rest, s.subjectLimit),
				})
			}
			return results, &RejectedError{
				Group:       group,
				Index:       i,
				LastApplied: i - 1,
				Err:         err,
			}
		}

		results = append(results, models.CommitResult{
			Group:   group,
			Status:  models.Committed(hash),
			Subject: subject,
		})
	}

	return results, nil
}

func (s *Sequencer) commitGroup(group models.ChangeGroup) (string, error) {
	if err := s.committer.Stage(group.Paths()...); err != nil {
		return "", err
	}
	return s.committer.Commit(Message(group, s.subjectLimit, s.bodyWrap))
}

// RejectedError reports a commit the repository refused mid-sequence
type RejectedError struct {
	// Group that failed
	Group models.ChangeGroup
	// Index of the failed group in plan order
	Index int
	// LastApplied is the index of the last successful group, -1 if none
	LastApplied int
	// Err is the underlying git failure
	Err error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("commit rejected for %s group (%s): %v",
		e.Group.Category, strings.Join(e.Group.Paths(), ", "), e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
