package plan

import (
	"testing"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrdersGroupsByPolicy(t *testing.T) {
	groups := []models.ChangeGroup{
		{Category: models.CategoryDocs},
		{Category: models.CategoryFeature},
		{Category: models.CategoryConfig},
		{Category: models.CategoryStyle},
	}

	p, err := Build(groups, models.DefaultCommitOrder)
	require.NoError(t, err)

	got := make([]models.Category, 0, len(p.Groups))
	for _, g := range p.Groups {
		got = append(got, g.Category)
	}
	assert.Equal(t, []models.Category{
		models.CategoryConfig,
		models.CategoryFeature,
		models.CategoryDocs,
		models.CategoryStyle,
	}, got)
}

func TestBuildOrderIndependentOfInput(t *testing.T) {
	a := []models.ChangeGroup{
		{Category: models.CategoryFix},
		{Category: models.CategoryConfig},
	}
	b := []models.ChangeGroup{
		{Category: models.CategoryConfig},
		{Category: models.CategoryFix},
	}

	pa, err := Build(a, models.DefaultCommitOrder)
	require.NoError(t, err)
	pb, err := Build(b, models.DefaultCommitOrder)
	require.NoError(t, err)

	assert.Equal(t, pa, pb)
}

func TestBuildCustomOrder(t *testing.T) {
	groups := []models.ChangeGroup{
		{Category: models.CategoryConfig},
		{Category: models.CategoryDocs},
	}
	order := []models.Category{
		models.CategoryDocs,
		models.CategoryStyle,
		models.CategoryTest,
		models.CategoryFix,
		models.CategoryFeature,
		models.CategoryRefactor,
		models.CategoryConfig,
	}

	p, err := Build(groups, order)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryDocs, p.Groups[0].Category)
	assert.Equal(t, models.CategoryConfig, p.Groups[1].Category)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil, models.DefaultCommitOrder)
	assert.ErrorIs(t, err, ErrNothingToCommit)
}

func TestBuildLeavesInputUntouched(t *testing.T) {
	groups := []models.ChangeGroup{
		{Category: models.CategoryDocs},
		{Category: models.CategoryConfig},
	}

	_, err := Build(groups, models.DefaultCommitOrder)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryDocs, groups[0].Category)
}
