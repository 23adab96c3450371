package server

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/export"
	"github.com/jonathan/tailor-engine/internal/logger"
	"github.com/jonathan/tailor-engine/internal/server/middleware"
	"github.com/jonathan/tailor-engine/internal/suggestions"
)

// ContentRequest replaces the draft text
type ContentRequest struct {
	Content *string `json:"content" validate:"required"`
}

// IntegrationRequest toggles suggestion integration
type IntegrationRequest struct {
	Allowed *bool `json:"allowed" validate:"required"`
}

// SignatureRequest sets the submission signature
type SignatureRequest struct {
	Signature string `json:"signature" validate:"required,max=200"`
}

// SuggestionRequest names one suggestion
type SuggestionRequest struct {
	Suggestion string `json:"suggestion" validate:"required"`
}

// ApplyAllRequest names the suggestions to apply; an empty list applies all
type ApplyAllRequest struct {
	Suggestions []string `json:"suggestions,omitempty" validate:"omitempty,dive,required"`
}

// lookupDraft resolves the {id} path value against the acting user's drafts
func (s *Server) lookupDraft(w http.ResponseWriter, r *http.Request) (*Draft, bool) {
	actorID, err := middleware.GetActorID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "invalid draft ID"})
		return nil, false
	}

	draft, err := s.drafts.Get(id, actorID)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return draft, true
}

// respondSnapshot writes the session snapshot, or the mapped error when op failed
func (s *Server) respondSnapshot(w http.ResponseWriter, snap suggestions.Snapshot, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, draft.View())
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	if err := s.drafts.Delete(draft.ID, draft.Owner); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditContent(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req ContentRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondSnapshot(w, draft.Session.Edit(*req.Content), nil)
}

func (s *Server) handleSetIntegration(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req IntegrationRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondSnapshot(w, draft.Session.Enable(*req.Allowed), nil)
}

func (s *Server) handleSetSignature(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req SignatureRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondSnapshot(w, draft.Session.SetSignature(req.Signature), nil)
}

func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req SuggestionRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := draft.Session.Apply(req.Suggestion)
	s.respondSnapshot(w, snap, err)
}

func (s *Server) handleRemoveSuggestion(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req SuggestionRequest
	if err := s.decodeJSON(r, &req, false); err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := draft.Session.Remove(req.Suggestion)
	s.respondSnapshot(w, snap, err)
}

func (s *Server) handleApplyAll(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	var req ApplyAllRequest
	if err := s.decodeJSON(r, &req, true); err != nil {
		s.writeError(w, err)
		return
	}
	var list []string
	if len(req.Suggestions) > 0 {
		list = req.Suggestions
	}
	snap, err := draft.Session.ApplyAll(list)
	s.respondSnapshot(w, snap, err)
}

func (s *Server) handleClearSuggestions(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	snap, err := draft.Session.ClearAll()
	s.respondSnapshot(w, snap, err)
}

func (s *Server) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}
	s.respondSnapshot(w, draft.Session.Reset(), nil)
}

// handleSubmitDraft signs the draft and writes the submission to the audit sink
func (s *Server) handleSubmitDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}

	snap, err := draft.Session.Submit(r.Context(), s.sink, draft.submitRequest(s.tenantID))
	if err != nil {
		s.logger.Warn("submission rejected",
			zap.String(logger.FieldDraftID, draft.ID.String()),
			zap.Int("status", HTTPStatus(err)),
			zap.Error(err))
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleExportDraft renders the current draft as plain text
func (s *Server) handleExportDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.lookupDraft(w, r)
	if !ok {
		return
	}

	st := draft.Session.Snapshot().State
	text, err := export.Render(&draft.Document, export.Options{
		Body:      st.CurrentDraft,
		Dismissed: st.AppliedSuggestions,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(&draft.Document, "txt")+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
