package ranking

import (
	"testing"

	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []types.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestRank_StableOnTies(t *testing.T) {
	records := []types.Record{
		{Name: "A", RewardCount: 5, AcademicScore: 8.0},
		{Name: "B", RewardCount: 5, AcademicScore: 9.0},
		{Name: "C", RewardCount: 5, AcademicScore: 8.0},
	}

	assert.Equal(t, []string{"B", "A", "C"}, names(Rank(records)))
}

func TestRank_RewardBeforeAcademic(t *testing.T) {
	records := []types.Record{
		{Name: "low_reward_high_score", RewardCount: 1, AcademicScore: 10.0},
		{Name: "high_reward", RewardCount: 7, AcademicScore: 6.0},
		{Name: "mid", RewardCount: 4, AcademicScore: 9.5},
		{Name: "mid_lower", RewardCount: 4, AcademicScore: 7.0},
	}

	assert.Equal(t, []string{"high_reward", "mid", "mid_lower", "low_reward_high_score"}, names(Rank(records)))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []types.Record{
		{Name: "A", RewardCount: 1},
		{Name: "B", RewardCount: 2},
	}

	_ = Rank(records)

	assert.Equal(t, []string{"A", "B"}, names(records))
}

func TestRank_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]types.Record{}))

	single := Rank([]types.Record{{Name: "only"}})
	require.Len(t, single, 1)
	assert.Equal(t, "only", single[0].Name)
}

func TestRankedEntries(t *testing.T) {
	entries := RankedEntries([]types.Record{
		{Name: "A", RewardCount: 1, AcademicScore: 7.5},
		{Name: "B", RewardCount: 3, AcademicScore: 8.0},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, types.RankedEntry{Rank: 1, Name: "B", RewardCount: 3, AcademicScore: 8.0}, entries[0])
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "A", entries[1].Name)
}
