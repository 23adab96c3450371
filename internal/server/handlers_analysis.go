package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/ingestion"
	"github.com/jonathan/tailor-engine/internal/logger"
	"github.com/jonathan/tailor-engine/internal/pipeline"
	"github.com/jonathan/tailor-engine/internal/server/middleware"
	"github.com/jonathan/tailor-engine/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Profile json.RawMessage `json:"profile" validate:"required"`
	Job     json.RawMessage `json:"job" validate:"required"`
}

// TailorRequest represents the request body for /tailor
type TailorRequest struct {
	Profile   json.RawMessage `json:"profile" validate:"required"`
	Job       json.RawMessage `json:"job" validate:"required"`
	Signature string          `json:"signature,omitempty" validate:"max=200"`
	// AllowSuggestionIntegration defaults to true when omitted
	AllowSuggestionIntegration *bool `json:"allow_suggestion_integration,omitempty"`
}

// TailorResponse represents the response for /tailor
type TailorResponse struct {
	Analysis  *types.FitAnalysis       `json:"analysis"`
	Documents []types.TailoredDocument `json:"documents"`
	DraftID   string                   `json:"draft_id,omitempty"`
}

// parseInputs validates and normalizes the profile and job documents
func parseInputs(profileJSON, jobJSON []byte) (*types.CandidateProfile, *types.JobPosting, error) {
	profile, err := ingestion.ParseProfile(profileJSON)
	if err != nil {
		return nil, nil, err
	}
	job, err := ingestion.ParseJob(jobJSON)
	if err != nil {
		return nil, nil, err
	}
	return profile, job, nil
}

// handleAnalyze scores a profile against a job
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}

	profile, job, err := parseInputs(req.Profile, req.Job)
	if err != nil {
		s.writeError(w, err)
		return
	}

	analysis := pipeline.Analyze(profile, job, pipeline.RunOptions{Analyzer: s.analyzer})
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleTailor scores, synthesizes the four documents and opens a draft over the cover letter
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.GetActorID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req TailorRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}

	profile, job, err := parseInputs(req.Profile, req.Job)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := pipeline.Run(profile, job, pipeline.RunOptions{Analyzer: s.analyzer})
	resp := TailorResponse{Analysis: result.Analysis, Documents: result.Documents}

	if cl := result.CoverLetter(); cl != nil {
		draft := s.drafts.Create(actorID, *cl, *job)
		if req.Signature != "" {
			draft.Session.SetSignature(req.Signature)
		}
		if req.AllowSuggestionIntegration != nil {
			draft.Session.Enable(*req.AllowSuggestionIntegration)
		}
		resp.DraftID = draft.ID.String()
		s.logger.Debug("draft created",
			zap.String(logger.FieldDraftID, resp.DraftID),
			zap.String(logger.FieldActorID, actorID),
			zap.String(logger.FieldJobID, job.ID))
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}
