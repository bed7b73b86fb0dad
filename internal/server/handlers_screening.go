package server

import (
	"net/http"

	"github.com/jonathan/candidate-screener/internal/pipeline"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/types"
)

// EvaluateResponse carries threshold feedback for a candidate
type EvaluateResponse struct {
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
}

// ScoresResponse is the result of comparing a stored candidate pool to a reference pool
type ScoresResponse struct {
	Scores []types.CandidateScore `json:"scores"`
	ByName map[string]int         `json:"by_name"`
}

// decodeCandidate reads a candidate body. Resumes must be sent inline; the
// server never reads files named by clients.
func decodeCandidate(w http.ResponseWriter, r *http.Request) (pipeline.CandidateInput, error) {
	var in pipeline.CandidateInput
	if err := decodeDocument(w, r, schemas.KindCandidate, &in); err != nil {
		return in, err
	}
	if in.ResumePath != "" {
		return in, &ErrValidation{Field: "resume_path", Message: "not accepted over HTTP, send resume_text"}
	}
	return in, nil
}

// handleCompare screens one candidate against the reference pool
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	in, err := decodeCandidate(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	comparison, err := s.screener.Compare(r.Context(), in, r.URL.Query().Get("table"))
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, comparison)
}

// handleEvaluate returns threshold feedback without consulting any pool
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	in, err := decodeCandidate(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	feedback, err := s.screener.Evaluate(in)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, EvaluateResponse{Name: in.Name, Feedback: feedback})
}

// handleScores compares every stored candidate against the reference pool
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scores, err := s.screener.CompareStored(r.Context(), q.Get("candidates"), q.Get("references"))
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoresResponse{
		Scores: scores,
		ByName: screening.ScoreMap(scores),
	})
}
