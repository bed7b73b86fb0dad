package analysis

import "strings"

// Role is the coarse grammatical role of a token
type Role string

const (
	// RoleKeyword marks noun-like tokens (any NN* tag)
	RoleKeyword Role = "keyword"
	// RoleSkill marks verb-like tokens (any VB* tag)
	RoleSkill Role = "skill"
	// RoleOther marks everything else
	RoleOther Role = "other"
)

// TaggedToken is a token with its fine-grained POS tag and derived role
type TaggedToken struct {
	Token Token  `json:"token"`
	Tag   string `json:"tag"`
	Role  Role   `json:"role"`
}

// Result is the outcome of analyzing one document
type Result struct {
	Tokens   []Token       `json:"tokens"`
	Tagged   []TaggedToken `json:"tagged"`
	Keywords []string      `json:"keywords"`
	Skills   []string      `json:"skills"`
}

// RoleForTag maps a Penn Treebank tag to a role
func RoleForTag(tag string) Role {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return RoleKeyword
	case strings.HasPrefix(tag, "VB"):
		return RoleSkill
	default:
		return RoleOther
	}
}

// TagRoles tags the whole token sequence at once and assigns roles
func (r *Resources) TagRoles(tokens []Token) []TaggedToken {
	tagged := make([]TaggedToken, 0, len(tokens))
	if len(tokens) == 0 {
		return tagged
	}

	tags := r.Tagger.Tag(Strings(tokens))
	for i, tok := range tokens {
		var t string
		if i < len(tags) {
			t = tags[i]
		}
		tagged = append(tagged, TaggedToken{Token: tok, Tag: t, Role: RoleForTag(t)})
	}
	return tagged
}

// Analyze normalizes and tags text, returning keyword and skill projections in token order
func (r *Resources) Analyze(text string) *Result {
	tokens := r.Normalize(text)
	tagged := r.TagRoles(tokens)

	result := &Result{
		Tokens:   tokens,
		Tagged:   tagged,
		Keywords: []string{},
		Skills:   []string{},
	}
	for _, tt := range tagged {
		switch tt.Role {
		case RoleKeyword:
			result.Keywords = append(result.Keywords, string(tt.Token))
		case RoleSkill:
			result.Skills = append(result.Skills, string(tt.Token))
		}
	}
	return result
}

// ExtractKeywords returns the noun-tagged tokens of text
func (r *Resources) ExtractKeywords(text string) []string {
	return r.Analyze(text).Keywords
}

// ExtractSkills returns the verb-tagged tokens of text
func (r *Resources) ExtractSkills(text string) []string {
	return r.Analyze(text).Skills
}
