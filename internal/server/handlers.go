package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
)

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse is the normalized and tagged form of a text
type AnalyzeResponse struct {
	Tokens   []string               `json:"tokens"`
	Tagged   []analysis.TaggedToken `json:"tagged"`
	Keywords []string               `json:"keywords"`
	Skills   []string               `json:"skills"`
}

// JobMatchRequest is the body of POST /job-match
type JobMatchRequest struct {
	Description string `json:"description"`
}

// JobMatchResponse lists the pool records matching a job description
type JobMatchResponse struct {
	Matched  []string       `json:"matched"`
	Records  []types.Record `json:"records"`
	Keywords []string       `json:"keywords"`
	Skills   []string       `json:"skills"`
}

// parseQueryInt reads a non-negative integer query parameter, capped at maxValue when positive
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// readBody reads a size-limited request body and checks that it is JSON
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &ErrValidation{Field: "body", Message: "request body must be valid JSON"}
	}
	return body, nil
}

// decodeJSON decodes a JSON request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// decodeDocument validates a request body against an embedded schema before decoding it into v
func decodeDocument(w http.ResponseWriter, r *http.Request, kind schemas.Kind, v any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(kind, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleAnalyze normalizes and tags the submitted text
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}

	result := s.screener.Analyze(req.Text)
	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Tokens:   analysis.Strings(result.Tokens),
		Tagged:   result.Tagged,
		Keywords: result.Keywords,
		Skills:   result.Skills,
	})
}

// handleJobMatch returns the records whose skills match terms from a job description
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	var req JobMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}

	matched, result, err := s.screener.JobMatch(r.Context(), req.Description, r.URL.Query().Get("table"))
	if err != nil {
		s.failure(w, err)
		return
	}

	names := make([]string, 0, len(matched))
	for _, rec := range matched {
		names = append(names, rec.Name)
	}
	s.jsonResponse(w, http.StatusOK, JobMatchResponse{
		Matched:  names,
		Records:  matched,
		Keywords: result.Keywords,
		Skills:   result.Skills,
	})
}
