package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/types"
)

// fakeSink records appended records; it can block until released and fail on demand
type fakeSink struct {
	mu      sync.Mutex
	records []audit.Record
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeSink) Append(ctx context.Context, rec audit.Record) error {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func newSession() *Session {
	return NewSession(&types.TailoredDocument{
		ID:            "doc-1",
		Type:          types.DocumentCoverLetter,
		Content:       "Dear Initech Hiring Team,\n\nI am excited to apply.",
		AISuggestions: []string{sugA, sugB},
	}, nil)
}

var submitReq = SubmitRequest{TenantID: "t1", ActorID: "u1", JobID: "job-1", JobTitle: "Engineer", Company: "Initech"}

func TestSubmit_IdleSubmittingSuccess(t *testing.T) {
	s := newSession()
	_, err := s.Apply(sugA)
	require.NoError(t, err)
	s.SetSignature("Jane Doe")
	require.Equal(t, StatusIdle, s.Snapshot().Status)

	sink := &fakeSink{started: make(chan struct{}), release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), sink, submitReq)
		done <- err
	}()

	<-sink.started
	assert.Equal(t, StatusSubmitting, s.Snapshot().Status)

	_, err = s.Submit(context.Background(), sink, submitReq)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, MsgSubmitInProgress, valErr.Message)

	close(sink.release)
	require.NoError(t, <-done)

	snap := s.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, audit.ActionCoverLetterSubmitted, rec.Action)
	assert.Equal(t, audit.ObjectTailoredDocument, rec.ObjectType)
	assert.Equal(t, "doc-1", rec.ObjectID)
	assert.Equal(t, "u1", rec.ActorID)

	var payload Payload
	require.NoError(t, json.Unmarshal(rec.Payload, &payload))
	assert.True(t, strings.HasSuffix(payload.Content, "\nJane Doe"))
	assert.Equal(t, "Jane Doe", payload.Signature)
	assert.Equal(t, "job-1", payload.JobID)
	assert.Equal(t, "Initech", payload.Company)
	assert.True(t, payload.AllowSuggestionIntegration)
	assert.Equal(t, []string{sugA}, payload.SuggestionsIntegrated)
	assert.Equal(t, payload.Content, snap.State.CurrentDraft)
}

func TestSubmit_PayloadKeys(t *testing.T) {
	s := newSession()
	s.SetSignature("Jane")
	sink := &fakeSink{}
	_, err := s.Submit(context.Background(), sink, submitReq)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(sink.records[0].Payload, &raw))
	for _, key := range []string{"jobId", "jobTitle", "company", "content", "signature", "allowSuggestionIntegration", "suggestionsIntegrated"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["suggestionsIntegrated"])
}

func TestSubmit_ValidationErrors(t *testing.T) {
	s := newSession()
	sink := &fakeSink{}

	snap, err := s.Submit(context.Background(), sink, submitReq)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, MsgEmptySignature, valErr.Message)
	assert.Equal(t, StatusError, snap.Status)
	assert.Equal(t, MsgEmptySignature, snap.Message)

	s.SetSignature("Jane")
	s.Edit("   ")
	snap, err = s.Submit(context.Background(), sink, submitReq)
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, MsgEmptyDraft, snap.Message)
	assert.Empty(t, sink.records)
}

func TestSubmit_ExternalWriteFailureThenRetry(t *testing.T) {
	s := newSession()
	s.SetSignature("Jane Doe")
	before := s.Snapshot().State.CurrentDraft

	failing := &fakeSink{err: errors.New("connection refused")}
	snap, err := s.Submit(context.Background(), failing, submitReq)

	var writeErr *ExternalWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, StatusError, snap.Status)
	assert.Contains(t, snap.Message, "connection refused")
	assert.Equal(t, before, snap.State.CurrentDraft)

	working := &fakeSink{}
	snap, err = s.Submit(context.Background(), working, submitReq)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.Len(t, working.records, 1)
}

func TestSubmit_NilSinkUsesNoop(t *testing.T) {
	s := newSession()
	s.SetSignature("Jane")
	snap, err := s.Submit(context.Background(), nil, submitReq)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, snap.Status)
}

func TestSubmit_SQLiteSink(t *testing.T) {
	sink, err := audit.OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	s := newSession()
	s.now = func() time.Time { return time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) }
	s.SetSignature("Jane Doe")
	_, err = s.Submit(context.Background(), sink, submitReq)
	require.NoError(t, err)

	records, err := sink.ListByObject(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "t1", records[0].TenantID)
	assert.True(t, records[0].CreatedAt.Equal(time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)))
}

func TestSession_PermissionErrorEntersErrorStatus(t *testing.T) {
	s := newSession()
	s.Enable(false)

	snap, err := s.Apply(sugA)
	var permErr *PermissionError
	require.True(t, errors.As(err, &permErr))
	assert.Equal(t, StatusError, snap.Status)
	assert.Equal(t, MsgIntegrationDisabled, snap.Message)
	assert.Empty(t, snap.State.AppliedSuggestions)

	snap = s.Enable(true)
	assert.Equal(t, StatusIdle, snap.Status)
	snap, err = s.Apply(sugA)
	require.NoError(t, err)
	assert.Equal(t, []string{sugA}, snap.State.AppliedSuggestions)
}

func TestSession_ResetAndClear(t *testing.T) {
	s := newSession()
	original := s.Snapshot().State.OriginalText

	_, err := s.ApplyAll(nil)
	require.NoError(t, err)
	snap, err := s.ClearAll()
	require.NoError(t, err)
	assert.Equal(t, original, snap.State.CurrentDraft)

	s.Edit("something else")
	assert.Equal(t, original, s.Reset().State.CurrentDraft)
}
