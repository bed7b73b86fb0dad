// Package types provides type definitions for structured data used throughout the candidate-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SkillSeparator joins skills in the persisted text column and in comma-separated input
const SkillSeparator = ", "

// Record is a reference entity (employee or stored candidate) in a record pool.
// Names are not guaranteed to be unique.
type Record struct {
	ID            uuid.UUID `json:"id,omitempty"`
	Name          string    `json:"name" validate:"required,min=1,max=255"`
	RewardCount   int       `json:"reward_count" validate:"gte=0"`
	AcademicScore float64   `json:"academic_score"`
	Skills        []string  `json:"skills" validate:"dive,excludesall=0x2C"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// Validate validates the Record using the validator.
func (r *Record) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return newValidationError(err)
	}
	return nil
}

// SkillsText returns the skills in their persisted ", " joined form
func (r *Record) SkillsText() string {
	return strings.Join(r.Skills, SkillSeparator)
}

// ParseSkillList splits a comma-separated skill list, trimming whitespace and dropping empty entries.
func ParseSkillList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// LowercaseSkills returns a copy of skills with every entry lowercased.
// Used when skills are normalized at write time so they compare against extracted tokens.
func LowercaseSkills(skills []string) []string {
	out := make([]string, len(skills))
	for i, skill := range skills {
		out[i] = strings.ToLower(skill)
	}
	return out
}

// ValidationError reports invalid record attributes before they reach the scorer
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single invalid attribute
type FieldError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s failed %q", f.Field, f.Rule))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func newValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}
