package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
)

// ListRecordsResponse represents the response for listing pool records
type ListRecordsResponse struct {
	Table   string         `json:"table"`
	Records []types.Record `json:"records"`
	Count   int            `json:"count"`
}

// RankResponse is a ranked pool
type RankResponse struct {
	Table   string              `json:"table"`
	Entries []types.RankedEntry `json:"entries"`
}

func (s *Server) tableParam(r *http.Request) string {
	if table := r.URL.Query().Get("table"); table != "" {
		return table
	}
	return s.screener.ReferenceTable
}

// handleListRecords lists a pool in insertion order, or the newest records when recent is set
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	table := s.tableParam(r)

	var (
		records []types.Record
		err     error
	)
	if recent := parseQueryInt(r, "recent", 0, 100); recent > 0 {
		records, err = s.screener.RecentRecords(r.Context(), table, recent)
	} else {
		records, err = s.screener.References(r.Context(), table)
	}
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ListRecordsResponse{
		Table:   table,
		Records: records,
		Count:   len(records),
	})
}

// handleCreateRecord stores one record in a pool
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var record types.Record
	if err := decodeDocument(w, r, schemas.KindRecord, &record); err != nil {
		s.failure(w, err)
		return
	}

	stored, err := s.screener.StoreRecord(r.Context(), s.tableParam(r), record)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleGetRecord retrieves a record by its ID
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	table := s.tableParam(r)
	record, err := s.screener.Record(r.Context(), table, id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if record == nil {
		s.failure(w, &ErrRecordNotFound{Table: table, ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleRank returns a pool ordered by reward count, then academic score
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	table := s.tableParam(r)
	entries, err := s.screener.Rank(r.Context(), table)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{Table: table, Entries: entries})
}
