package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/logger"
	"github.com/jonathan/tailor-engine/internal/types"
)

// Status is the submission state of a session
type Status string

// Session statuses
const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// SubmitRequest identifies who submits and for which job
type SubmitRequest struct {
	TenantID string
	ActorID  string
	JobID    string
	JobTitle string
	Company  string
}

// Payload is the serialized body of a submission audit record
type Payload struct {
	JobID                      string   `json:"jobId"`
	JobTitle                   string   `json:"jobTitle"`
	Company                    string   `json:"company"`
	Content                    string   `json:"content"`
	Signature                  string   `json:"signature"`
	AllowSuggestionIntegration bool     `json:"allowSuggestionIntegration"`
	SuggestionsIntegrated      []string `json:"suggestionsIntegrated"`
}

// Snapshot is a consistent copy of a session's observable state
type Snapshot struct {
	DocumentID string                     `json:"document_id"`
	State      types.SuggestionDraftState `json:"state"`
	Status     Status                     `json:"status"`
	Message    string                     `json:"message,omitempty"`
}

// Session owns the editable draft of one document
type Session struct {
	mu         sync.Mutex
	documentID string
	state      types.SuggestionDraftState
	status     Status
	message    string

	logger *zap.Logger
	now    func() time.Time
}

// NewSession seeds a session from a document. A nil logger disables logging.
func NewSession(doc *types.TailoredDocument, log *zap.Logger) *Session {
	return &Session{
		documentID: doc.ID,
		state:      types.NewDraftState(doc),
		status:     StatusIdle,
		logger:     logger.OrNop(log).With(zap.String(logger.FieldDocumentID, doc.ID)),
		now:        time.Now,
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		DocumentID: s.documentID,
		State:      s.state.Clone(),
		Status:     s.status,
		Message:    s.message,
	}
}

// Enable sets the integration gate
func (s *Session) Enable(allowed bool) Snapshot {
	return s.update(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		return Enable(st, allowed), nil
	})
}

// Apply splices a suggestion into the draft
func (s *Session) Apply(suggestion string) (Snapshot, error) {
	return s.updateErr(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		return Apply(st, suggestion)
	})
}

// Remove takes a suggestion back out of the draft
func (s *Session) Remove(suggestion string) (Snapshot, error) {
	return s.updateErr(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		return Remove(st, suggestion)
	})
}

// ApplyAll applies the given suggestions, or all of them when list is nil
func (s *Session) ApplyAll(list []string) (Snapshot, error) {
	return s.updateErr(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		return ApplyAll(st, list)
	})
}

// ClearAll removes every applied suggestion
func (s *Session) ClearAll() (Snapshot, error) {
	return s.updateErr(ClearAll)
}

// Reset restores the original text
func (s *Session) Reset() Snapshot {
	return s.update(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		return Reset(st), nil
	})
}

// Edit replaces the draft with manually edited text. Applied suggestions stay recorded.
func (s *Session) Edit(text string) Snapshot {
	return s.update(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		next := st.Clone()
		next.CurrentDraft = text
		return next, nil
	})
}

// SetSignature sets the signature used at submission
func (s *Session) SetSignature(signature string) Snapshot {
	return s.update(func(st types.SuggestionDraftState) (types.SuggestionDraftState, error) {
		next := st.Clone()
		next.Signature = signature
		return next, nil
	})
}

func (s *Session) update(fn func(types.SuggestionDraftState) (types.SuggestionDraftState, error)) Snapshot {
	snap, _ := s.updateErr(fn)
	return snap
}

// updateErr applies a transition. A failed transition keeps the draft and enters the Error status.
func (s *Session) updateErr(fn func(types.SuggestionDraftState) (types.SuggestionDraftState, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		s.fail(err)
		return s.snapshotLocked(), err
	}
	s.state = next
	if s.status != StatusSubmitting {
		s.status = StatusIdle
		s.message = ""
	}
	return s.snapshotLocked(), nil
}

func (s *Session) fail(err error) {
	if s.status == StatusSubmitting {
		return
	}
	s.status = StatusError
	s.message = userMessage(err)
}

// Submit signs the draft and appends a submission record to sink. A nil sink behaves like audit.NoopSink.
// The sink write happens without holding the session lock; a failure leaves the draft untouched.
func (s *Session) Submit(ctx context.Context, sink audit.Sink, req SubmitRequest) (Snapshot, error) {
	if sink == nil {
		sink = audit.NoopSink{}
	}

	s.mu.Lock()
	if s.status == StatusSubmitting {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, &ValidationError{Message: MsgSubmitInProgress}
	}
	if err := validateSubmission(s.state); err != nil {
		s.fail(err)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, err
	}

	content := EnsureSignature(s.state.CurrentDraft, s.state.Signature)
	payload := Payload{
		JobID:                      req.JobID,
		JobTitle:                   req.JobTitle,
		Company:                    req.Company,
		Content:                    content,
		Signature:                  strings.TrimSpace(s.state.Signature),
		AllowSuggestionIntegration: s.state.IntegrationAllowed,
		SuggestionsIntegrated:      append([]string{}, s.state.AppliedSuggestions...),
	}
	s.status = StatusSubmitting
	s.message = ""
	s.mu.Unlock()

	s.logger.Debug("submitting document", logger.StringFields(logger.FieldActorID, req.ActorID, logger.FieldJobID, req.JobID)...)
	err := s.write(ctx, sink, req, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.message = userMessage(err)
		s.logger.Warn("submission failed", zap.Error(err))
		return s.snapshotLocked(), err
	}
	s.state.CurrentDraft = content
	s.status = StatusSuccess
	s.logger.Info("document submitted", logger.StringFields(logger.FieldActorID, req.ActorID, logger.FieldJobID, req.JobID)...)
	return s.snapshotLocked(), nil
}

func (s *Session) write(ctx context.Context, sink audit.Sink, req SubmitRequest, payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &ExternalWriteError{Message: "failed to encode submission payload", Cause: err}
	}
	rec := audit.Record{
		ID:         uuid.New(),
		TenantID:   req.TenantID,
		ActorID:    req.ActorID,
		Action:     audit.ActionCoverLetterSubmitted,
		ObjectType: audit.ObjectTailoredDocument,
		ObjectID:   s.documentID,
		Payload:    raw,
		CreatedAt:  s.now().UTC(),
	}
	if err := sink.Append(ctx, rec); err != nil {
		return &ExternalWriteError{Message: MsgSubmitFailed, Cause: err}
	}
	return nil
}

func validateSubmission(st types.SuggestionDraftState) error {
	if strings.TrimSpace(st.CurrentDraft) == "" {
		return &ValidationError{Message: MsgEmptyDraft}
	}
	if strings.TrimSpace(st.Signature) == "" {
		return &ValidationError{Message: MsgEmptySignature}
	}
	return nil
}

// userMessage returns the fixed message of a known error, or its text
func userMessage(err error) string {
	switch e := err.(type) {
	case *ValidationError:
		return e.Message
	case *PermissionError:
		return e.Message
	case *ExternalWriteError:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	default:
		return err.Error()
	}
}
