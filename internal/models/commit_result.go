package models

// CommitStatus represents the outcome of committing a single group
type CommitStatus interface {
	isCommitStatus()
}

type commitStatusCommitted struct{ Hash string }
type commitStatusSkipped struct{ Reason string }
type commitStatusRejected struct{ Error string }

func (commitStatusCommitted) isCommitStatus() {}
func (commitStatusSkipped) isCommitStatus()   {}
func (commitStatusRejected) isCommitStatus()  {}

// Committed creates a CommitStatus for a recorded commit with its short hash
func Committed(hash string) CommitStatus {
	return commitStatusCommitted{Hash: hash}
}

// SkippedCommit creates a CommitStatus for a group that was not attempted
func SkippedCommit(reason string) CommitStatus {
	return commitStatusSkipped{Reason: reason}
}

// RejectedCommit creates a CommitStatus for a commit the repository refused
func RejectedCommit(err string) CommitStatus {
	return commitStatusRejected{Error: err}
}

// CommitResult represents the outcome for a single group in an apply run
type CommitResult struct {
	// Group the result belongs to
	Group ChangeGroup
	// Status of the commit operation
	Status CommitStatus
	// Subject line that was (or would have been) used
	Subject string
}

// IsCommitted returns true if status is Committed
func IsCommitted(s CommitStatus) bool {
	_, ok := s.(commitStatusCommitted)
	return ok
}

// IsSkipped returns true if status is Skipped
func IsSkipped(s CommitStatus) bool {
	_, ok := s.(commitStatusSkipped)
	return ok
}

// IsRejected returns true if status is Rejected
func IsRejected(s CommitStatus) bool {
	_, ok := s.(commitStatusRejected)
	return ok
}

// CommitHash returns the short hash for Committed statuses
func CommitHash(s CommitStatus) string {
	if c, ok := s.(commitStatusCommitted); ok {
		return c.Hash
	}
	return ""
}

// StatusReason returns the reason string for Skipped or Rejected statuses
func StatusReason(s CommitStatus) string {
	if sk, ok := s.(commitStatusSkipped); ok {
		return sk.Reason
	}
	if r, ok := s.(commitStatusRejected); ok {
		return r.Error
	}
	return ""
}
