// Package ranking orders reference and candidate records by their numeric attributes.
package ranking

import (
	"sort"

	"github.com/jonathan/candidate-screener/internal/types"
)

// Rank orders records by reward count then academic score, both descending.
// Records with equal keys keep their input order. The input slice is not modified.
func Rank(records []types.Record) []types.Record {
	ranked := make([]types.Record, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RewardCount != ranked[j].RewardCount {
			return ranked[i].RewardCount > ranked[j].RewardCount
		}
		return ranked[i].AcademicScore > ranked[j].AcademicScore
	})

	return ranked
}

// RankedEntries ranks records and numbers them from 1
func RankedEntries(records []types.Record) []types.RankedEntry {
	ranked := Rank(records)
	entries := make([]types.RankedEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = types.RankedEntry{
			Rank:          i + 1,
			Name:          r.Name,
			RewardCount:   r.RewardCount,
			AcademicScore: r.AcademicScore,
		}
	}
	return entries
}
