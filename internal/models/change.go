package models

// ChangeStatus describes how a path differs from the last committed snapshot
type ChangeStatus int

const (
	StatusAdded ChangeStatus = iota
	StatusModified
	StatusDeleted
	StatusUntracked
)

func (s ChangeStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	case StatusUntracked:
		return "untracked"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in list views
func (s ChangeStatus) Symbol() string {
	switch s {
	case StatusAdded:
		return "A"
	case StatusModified:
		return "M"
	case StatusDeleted:
		return "D"
	case StatusUntracked:
		return "?"
	default:
		return " "
	}
}

// ChangeRecord is a single changed path in the working tree.
// Records are immutable once read; one record exists per changed path.
type ChangeRecord struct {
	// Path is relative to the repository root, slash-separated
	Path string
	// Status of the change versus HEAD
	Status ChangeStatus
	// DiffText is the unified diff for this path ("" for binary content)
	DiffText string
}

// NewChangeRecord creates a new ChangeRecord
func NewChangeRecord(path string, status ChangeStatus, diffText string) ChangeRecord {
	return ChangeRecord{
		Path:     path,
		Status:   status,
		DiffText: diffText,
	}
}
