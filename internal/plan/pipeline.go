package plan

import (
	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/filter"
	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/grouping"
	"github.com/wahlandcase/attuned.commitsort/internal/models"
)

// Scan is the result of one read-only pass over a repository
type Scan struct {
	// RepoRoot is the resolved repository root
	RepoRoot string
	// RepoName is the root directory name for display
	RepoName string
	// Records after filtering, in path order
	Records []models.ChangeRecord
	// Excluded records with their matched rules
	Excluded []models.ExcludedRecord
	// Plan is the ordered commit plan built from Records
	Plan models.CommitPlan
}

// ScanRepository runs the read-only half of the pipeline: read changes,
// filter sensitive paths, group, order. The repository is not mutated.
//
// When the tree yields zero groups the scan is still returned (excluded
// records may explain why) together with ErrNothingToCommit.
func ScanRepository(path string, cfg *config.Config) (*Scan, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	records, err := repo.Changes()
	if err != nil {
		return nil, err
	}

	kept, excluded := filter.Apply(records, filter.PolicyFrom(cfg))
	groups := grouping.BuildGroups(kept)

	scan := &Scan{
		RepoRoot: repo.Root(),
		RepoName: repo.Name(),
		Records:  kept,
		Excluded: excluded,
	}

	commitPlan, err := Build(groups, cfg.CommitOrder())
	if err != nil {
		return scan, err
	}

	scan.Plan = commitPlan
	return scan, nil
}
