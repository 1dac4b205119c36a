package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, c := range AllCategories {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCategory("chore")
	assert.Error(t, err)
}

func TestOrderTablesArePermutations(t *testing.T) {
	for name, order := range map[string][]Category{
		"ClassifyPreference": ClassifyPreference,
		"DefaultCommitOrder": DefaultCommitOrder,
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, order, len(AllCategories))
			seen := make(map[Category]bool)
			for _, c := range order {
				assert.False(t, seen[c])
				seen[c] = true
			}
		})
	}
}

func TestCommitStatusPredicates(t *testing.T) {
	committed := Committed("abc1234")
	assert.True(t, IsCommitted(committed))
	assert.Equal(t, "abc1234", CommitHash(committed))

	skipped := SkippedCommit("not attempted after rejection")
	assert.True(t, IsSkipped(skipped))
	assert.Equal(t, "not attempted after rejection", StatusReason(skipped))

	rejected := RejectedCommit("hook failed")
	assert.True(t, IsRejected(rejected))
	assert.Equal(t, "hook failed", StatusReason(rejected))

	assert.False(t, IsCommitted(rejected))
	assert.False(t, IsRejected(committed))
}
