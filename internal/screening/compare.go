package screening

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/types"
)

// NewProfile builds a candidate profile from a record and, when present, the analysis of its document
func NewProfile(record types.Record, result *analysis.Result) types.CandidateProfile {
	profile := types.NewCandidateProfile(record)
	if result != nil {
		profile.Keywords = append([]string(nil), result.Keywords...)
		profile.ExtractedSkills = append([]string(nil), result.Skills...)
	}
	return profile
}

// CompareAll scores every candidate against the same reference pool, in candidate order
func CompareAll(candidates []types.CandidateProfile, references []types.Record) []types.CandidateScore {
	scores := make([]types.CandidateScore, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		score := AggregateScore(c, references)
		scores = append(scores, types.CandidateScore{
			Name:     c.Name,
			Score:    score,
			Selected: score >= SelectionThreshold,
			Feedback: Evaluate(c),
		})
	}
	return scores
}

// ProfilesFromRecords wraps stored records as candidate profiles with no derived sets
func ProfilesFromRecords(records []types.Record) []types.CandidateProfile {
	profiles := make([]types.CandidateProfile, len(records))
	for i, r := range records {
		profiles[i] = types.NewCandidateProfile(r)
	}
	return profiles
}

// ScoreMap converts comparison rows into the name->score sink. Names are not unique;
// a later row with the same name replaces an earlier one.
func ScoreMap(scores []types.CandidateScore) map[string]int {
	m := make(map[string]int, len(scores))
	for _, s := range scores {
		m[s.Name] = s.Score
	}
	return m
}

// MatchJobDescription returns the records whose stored skills contain any keyword
// or skill extracted from a job description, in input order.
func MatchJobDescription(result *analysis.Result, records []types.Record) []types.Record {
	terms := make(map[string]bool, len(result.Keywords)+len(result.Skills))
	for _, t := range result.Keywords {
		terms[t] = true
	}
	for _, t := range result.Skills {
		terms[t] = true
	}

	matched := make([]types.Record, 0)
	if len(terms) == 0 {
		return matched
	}
	for _, r := range records {
		for _, skill := range r.Skills {
			if terms[strings.TrimSpace(skill)] {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}
