// Package screening scores candidate profiles against a pool of reference records
// and turns the scores into feedback and a selection decision.
package screening

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

// Fixed feedback thresholds, applied to the candidate alone
const (
	minRewards       = 3
	minAcademicScore = 8.0
	minSkills        = 3
)

// SelectionThreshold is the aggregate score a candidate needs to be selected.
// The aggregate is a sum over the pool, so this is only meaningful for small,
// roughly constant-size pools.
const SelectionThreshold = 3

// MaxMatchScore is the number of sub-criteria compared per reference record
const MaxMatchScore = 3

// Feedback messages, in evaluation order
const (
	FeedbackFewerRewards  = "Candidate has fewer rewards. "
	FeedbackLowerAcademic = "Candidate has a lower academic score. "
	FeedbackLacksSkills   = "Candidate lacks sufficient skills. "
	FeedbackMeetsCriteria = "Candidate meets criteria."
)

// MatchScore counts the sub-criteria the candidate satisfies against one reference:
// reward count, academic score, and a non-empty skill intersection.
func MatchScore(candidate *types.CandidateProfile, reference *types.Record) int {
	score := 0
	if candidate.RewardCount >= reference.RewardCount {
		score++
	}
	if candidate.AcademicScore >= reference.AcademicScore {
		score++
	}
	if skillsIntersect(candidate.SkillSet(), reference.Skills) {
		score++
	}
	return score
}

// AggregateScore sums MatchScore over every reference. It is not an average and
// grows with the pool; callers comparing pools of different sizes normalize themselves.
func AggregateScore(candidate *types.CandidateProfile, references []types.Record) int {
	total := 0
	for i := range references {
		total += MatchScore(candidate, &references[i])
	}
	return total
}

// Evaluate checks the fixed thresholds directly on the candidate and never consults a pool
func Evaluate(candidate *types.CandidateProfile) string {
	var feedback strings.Builder
	if candidate.RewardCount < minRewards {
		feedback.WriteString(FeedbackFewerRewards)
	}
	if candidate.AcademicScore < minAcademicScore {
		feedback.WriteString(FeedbackLowerAcademic)
	}
	if len(candidate.SkillSet()) < minSkills {
		feedback.WriteString(FeedbackLacksSkills)
	}
	if feedback.Len() == 0 {
		return FeedbackMeetsCriteria
	}
	return feedback.String()
}

// Select reports whether the aggregate score reaches SelectionThreshold
func Select(candidate *types.CandidateProfile, references []types.Record) bool {
	return AggregateScore(candidate, references) >= SelectionThreshold
}

// skillsIntersect compares skills case-sensitively, exactly as stored
func skillsIntersect(candidateSkills, referenceSkills []string) bool {
	if len(candidateSkills) == 0 || len(referenceSkills) == 0 {
		return false
	}
	ref := make(map[string]bool, len(referenceSkills))
	for _, s := range referenceSkills {
		ref[s] = true
	}
	for _, s := range candidateSkills {
		if ref[s] {
			return true
		}
	}
	return false
}
