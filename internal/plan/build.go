// Package plan orders change groups into a commit plan and applies it, one
// atomic commit per group, through the git collaborator.
package plan

import (
	"errors"
	"sort"

	"github.com/wahlandcase/attuned.commitsort/internal/models"
)

// ErrNothingToCommit indicates the working tree produced zero groups
var ErrNothingToCommit = errors.New("nothing to commit")

// Build orders groups by the category policy and returns the commit plan.
// The order table lists every category once; groups are sorted by their
// category's position regardless of input order.
func Build(groups []models.ChangeGroup, order []models.Category) (models.CommitPlan, error) {
	if len(groups) == 0 {
		return models.CommitPlan{}, ErrNothingToCommit
	}

	rank := make(map[models.Category]int, len(order))
	for i, cat := range order {
		rank[cat] = i
	}

	ordered := make([]models.ChangeGroup, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank[ordered[i].Category] < rank[ordered[j].Category]
	})

	return models.CommitPlan{Groups: ordered}, nil
}
