// Package pipeline provides the high-level orchestration for screening runs:
// document loading, analysis, record storage and scoring against a pool.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/ingestion"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/types"
)

// ProgressEvent represents a progress update during a screening run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through ProgressCallback
const (
	StepLoad     = "load"
	StepAnalyze  = "analyze"
	StepFetch    = "fetch"
	StepScore    = "score"
	StepStore    = "store"
	StepJobMatch = "job_match"
)

// Screener runs screening operations against a record store.
// Resources is shared read-only; a Screener is safe for concurrent use when its Store is.
type Screener struct {
	Store           db.Store
	Resources       *analysis.Resources
	ReferenceTable  string
	CandidateTable  string
	NormalizeSkills bool // lowercase skills before storing or scoring
	Concurrency     int  // documents loaded in parallel
	OnProgress      ProgressCallback
}

// CandidateInput is a candidate as submitted: numeric attributes, declared skills
// and an optional resume given inline or by path.
type CandidateInput struct {
	types.Record
	ResumeText string `json:"resume_text,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`
}

// ReferenceScore is the match score of a candidate against one reference record
type ReferenceScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Comparison is the outcome of screening one candidate against a pool
type Comparison struct {
	Candidate   types.CandidateProfile `json:"candidate"`
	Analysis    *analysis.Result       `json:"analysis,omitempty"`
	MatchScores []ReferenceScore       `json:"match_scores"`
	Aggregate   int                    `json:"aggregate"`
	Selected    bool                   `json:"selected"`
	Feedback    string                 `json:"feedback"`
}

// DocumentAnalysis pairs a loaded document with its analysis
type DocumentAnalysis struct {
	Path   string           `json:"path"`
	Result *analysis.Result `json:"result"`
}

func (s *Screener) emit(step, message string, content any) {
	if s.OnProgress != nil {
		s.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

func (s *Screener) table(requested, fallback string) (string, error) {
	table := requested
	if table == "" {
		table = fallback
	}
	if err := db.ValidateTableName(table); err != nil {
		return "", err
	}
	return table, nil
}

func (s *Screener) prepare(record types.Record) types.Record {
	if s.NormalizeSkills {
		record.Skills = types.LowercaseSkills(record.Skills)
	}
	return record
}

// Analyze normalizes and tags free text
func (s *Screener) Analyze(text string) *analysis.Result {
	return s.Resources.Analyze(ingestion.CleanText(text))
}

// AnalyzeDocuments loads every document concurrently and analyzes each, in path order
func (s *Screener) AnalyzeDocuments(ctx context.Context, paths []string) ([]DocumentAnalysis, error) {
	docs, err := ingestion.LoadDocuments(ctx, paths, s.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	s.emit(StepLoad, fmt.Sprintf("Loaded %d documents", len(docs)), nil)

	out := make([]DocumentAnalysis, 0, len(docs))
	for _, doc := range docs {
		result := s.Resources.Analyze(doc.Text)
		s.emit(StepAnalyze, fmt.Sprintf("Analyzed %s: %d keywords, %d skills",
			doc.Path, len(result.Keywords), len(result.Skills)), result)
		out = append(out, DocumentAnalysis{Path: doc.Path, Result: result})
	}
	return out, nil
}

// Profile validates a candidate and derives keyword and skill sets from its resume, if any.
// The returned analysis is nil when no resume was given.
func (s *Screener) Profile(in CandidateInput) (types.CandidateProfile, *analysis.Result, error) {
	record := s.prepare(in.Record)
	if err := record.Validate(); err != nil {
		return types.CandidateProfile{}, nil, err
	}

	text := in.ResumeText
	if text == "" && in.ResumePath != "" {
		extracted, err := ingestion.ExtractText(in.ResumePath)
		if err != nil {
			return types.CandidateProfile{}, nil, err
		}
		text = extracted
	}

	var result *analysis.Result
	if text != "" {
		result = s.Analyze(text)
		if s.NormalizeSkills {
			result.Skills = types.LowercaseSkills(result.Skills)
		}
		s.emit(StepAnalyze, fmt.Sprintf("Analyzed resume for %s", record.Name), result)
	}
	return screening.NewProfile(record, result), result, nil
}

// References returns every record of the reference table, or of table when given
func (s *Screener) References(ctx context.Context, table string) ([]types.Record, error) {
	t, err := s.table(table, s.ReferenceTable)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.ListRecords(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records from %s: %w", t, err)
	}
	s.emit(StepFetch, fmt.Sprintf("Fetched %d records from %s", len(records), t), nil)
	return records, nil
}

// RecentRecords returns up to limit records of table, newest first
func (s *Screener) RecentRecords(ctx context.Context, table string, limit int) ([]types.Record, error) {
	t, err := s.table(table, s.ReferenceTable)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.ListRecentRecords(ctx, t, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent records from %s: %w", t, err)
	}
	return records, nil
}

// Record returns one record of table by id, or nil if it does not exist
func (s *Screener) Record(ctx context.Context, table string, id uuid.UUID) (*types.Record, error) {
	t, err := s.table(table, s.ReferenceTable)
	if err != nil {
		return nil, err
	}
	return s.Store.GetRecord(ctx, t, id)
}

// Evaluate returns the threshold feedback for a candidate. It never reads the pool.
func (s *Screener) Evaluate(in CandidateInput) (string, error) {
	profile, _, err := s.Profile(in)
	if err != nil {
		return "", err
	}
	return screening.Evaluate(&profile), nil
}

// Compare screens one candidate against the reference pool
func (s *Screener) Compare(ctx context.Context, in CandidateInput, table string) (*Comparison, error) {
	profile, result, err := s.Profile(in)
	if err != nil {
		return nil, err
	}
	references, err := s.References(ctx, table)
	if err != nil {
		return nil, err
	}

	scores := make([]ReferenceScore, 0, len(references))
	for i := range references {
		scores = append(scores, ReferenceScore{
			Name:  references[i].Name,
			Score: screening.MatchScore(&profile, &references[i]),
		})
	}

	aggregate := screening.AggregateScore(&profile, references)
	comparison := &Comparison{
		Candidate:   profile,
		Analysis:    result,
		MatchScores: scores,
		Aggregate:   aggregate,
		Selected:    aggregate >= screening.SelectionThreshold,
		Feedback:    screening.Evaluate(&profile),
	}
	s.emit(StepScore, fmt.Sprintf("%s scored %d against %d references", profile.Name, aggregate, len(references)), comparison)
	return comparison, nil
}

// CompareStored scores every stored candidate against every reference, in candidate order
func (s *Screener) CompareStored(ctx context.Context, candidateTable, referenceTable string) ([]types.CandidateScore, error) {
	ct, err := s.table(candidateTable, s.CandidateTable)
	if err != nil {
		return nil, err
	}
	candidates, err := s.Store.ListRecords(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates from %s: %w", ct, err)
	}
	references, err := s.References(ctx, referenceTable)
	if err != nil {
		return nil, err
	}

	profiles := screening.ProfilesFromRecords(candidates)
	for i := range profiles {
		profiles[i].Record = s.prepare(profiles[i].Record)
	}
	scores := screening.CompareAll(profiles, references)
	s.emit(StepScore, fmt.Sprintf("Scored %d candidates against %d references", len(scores), len(references)), scores)
	return scores, nil
}

// StoreRecord validates a record and inserts it, creating the table if needed
func (s *Screener) StoreRecord(ctx context.Context, table string, record types.Record) (*types.Record, error) {
	t, err := s.table(table, s.ReferenceTable)
	if err != nil {
		return nil, err
	}
	record = s.prepare(record)
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := s.Store.EnsureTable(ctx, t); err != nil {
		return nil, err
	}
	stored, err := s.Store.InsertRecord(ctx, t, &record)
	if err != nil {
		return nil, err
	}
	s.emit(StepStore, fmt.Sprintf("Stored %s in %s", stored.Name, t), stored)
	return stored, nil
}

// StoreRecords inserts records in order and stops at the first failure
func (s *Screener) StoreRecords(ctx context.Context, table string, records []types.Record) ([]types.Record, error) {
	stored := make([]types.Record, 0, len(records))
	for i, record := range records {
		r, err := s.StoreRecord(ctx, table, record)
		if err != nil {
			return stored, fmt.Errorf("record %d (%s): %w", i, record.Name, err)
		}
		stored = append(stored, *r)
	}
	return stored, nil
}

// Rank orders the records of table (the reference table by default)
func (s *Screener) Rank(ctx context.Context, table string) ([]types.RankedEntry, error) {
	records, err := s.References(ctx, table)
	if err != nil {
		return nil, err
	}
	return ranking.RankedEntries(ranking.Rank(records)), nil
}

// JobMatch analyzes a job description and returns the records whose stored
// skills contain any extracted term, in table order.
func (s *Screener) JobMatch(ctx context.Context, description, table string) ([]types.Record, *analysis.Result, error) {
	result := s.Analyze(description)
	records, err := s.References(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	matched := screening.MatchJobDescription(result, records)
	if len(matched) == 0 {
		log.Printf("No records in pool match the %d extracted terms", len(result.Keywords)+len(result.Skills))
	}
	s.emit(StepJobMatch, fmt.Sprintf("%d of %d records match", len(matched), len(records)), matched)
	return matched, result, nil
}
