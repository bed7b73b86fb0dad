package types

// CandidateProfile is the entity under evaluation: a record plus the keyword and
// skill sets derived from its document. Constructed per evaluation request.
type CandidateProfile struct {
	Record
	Keywords        []string `json:"keywords,omitempty"`
	ExtractedSkills []string `json:"extracted_skills,omitempty"`
}

// NewCandidateProfile builds a profile with no derived sets
func NewCandidateProfile(record Record) CandidateProfile {
	return CandidateProfile{Record: record}
}

// SkillSet returns declared skills followed by extracted skills, duplicates removed,
// order of first appearance kept.
func (c *CandidateProfile) SkillSet() []string {
	seen := make(map[string]bool, len(c.Skills)+len(c.ExtractedSkills))
	out := make([]string, 0, len(c.Skills)+len(c.ExtractedSkills))
	for _, list := range [][]string{c.Skills, c.ExtractedSkills} {
		for _, skill := range list {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			out = append(out, skill)
		}
	}
	return out
}

// CandidateScore is one row of a comparison run
type CandidateScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Selected bool   `json:"selected"`
	Feedback string `json:"feedback"`
}

// RankedEntry is a record with its 1-based position in a ranking
type RankedEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	RewardCount   int     `json:"reward_count"`
	AcademicScore float64 `json:"academic_score"`
}
