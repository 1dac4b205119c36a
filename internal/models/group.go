package models

// ChangeGroup is a cohesive unit of changes that becomes one commit.
// A group owns its members; a record never appears in two groups.
type ChangeGroup struct {
	// Category assigned by the grouping engine
	Category Category
	// Members in path order
	Members []ChangeRecord
	// Summary is the common path prefix of the members ("" for repository root)
	Summary string
}

// Paths returns the member paths in order
func (g ChangeGroup) Paths() []string {
	paths := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		paths = append(paths, m.Path)
	}
	return paths
}

// CommitPlan is the ordered sequence of groups for one invocation.
// It is never persisted; the next invocation rebuilds it from the working tree.
type CommitPlan struct {
	// Groups in commit order
	Groups []ChangeGroup
}

// TotalFiles returns the number of records across all groups
func (p CommitPlan) TotalFiles() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Members)
	}
	return n
}
