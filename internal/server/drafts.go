package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/suggestions"
	"github.com/jonathan/tailor-engine/internal/types"
)

// Draft is an editable cover letter owned by one actor
type Draft struct {
	ID        uuid.UUID
	Owner     string
	Document  types.TailoredDocument
	Job       types.JobPosting
	Session   *suggestions.Session
	CreatedAt time.Time
}

// DraftView is the JSON shape of a draft
type DraftView struct {
	ID        uuid.UUID            `json:"id"`
	Owner     string               `json:"owner"`
	JobID     string               `json:"job_id,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	Session   suggestions.Snapshot `json:"session"`
}

// View returns the draft with a consistent session snapshot
func (d *Draft) View() DraftView {
	return DraftView{
		ID:        d.ID,
		Owner:     d.Owner,
		JobID:     d.Job.ID,
		CreatedAt: d.CreatedAt,
		Session:   d.Session.Snapshot(),
	}
}

// submitRequest builds the submission identity for this draft
func (d *Draft) submitRequest(tenantID string) suggestions.SubmitRequest {
	return suggestions.SubmitRequest{
		TenantID: tenantID,
		ActorID:  d.Owner,
		JobID:    d.Job.ID,
		JobTitle: d.Job.Title,
		Company:  d.Job.Company,
	}
}

// DraftStore keeps drafts in memory, keyed by id
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*Draft
	logger *zap.Logger
}

// NewDraftStore creates an empty store. A nil logger disables session logging.
func NewDraftStore(logger *zap.Logger) *DraftStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DraftStore{
		drafts: make(map[uuid.UUID]*Draft),
		logger: logger,
	}
}

// Create opens a session over doc for owner
func (s *DraftStore) Create(owner string, doc types.TailoredDocument, job types.JobPosting) *Draft {
	d := &Draft{
		ID:        uuid.New(),
		Owner:     owner,
		Document:  doc,
		Job:       job,
		Session:   suggestions.NewSession(&doc, s.logger),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d
}

// Get returns the draft if it exists and actor owns it
func (s *DraftStore) Get(id uuid.UUID, actor string) (*Draft, error) {
	s.mu.RLock()
	d, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, &ErrDraftNotFound{DraftID: id}
	}
	if d.Owner != actor {
		return nil, &ErrForbidden{ActorID: actor}
	}
	return d, nil
}

// Delete removes the draft if actor owns it
func (s *DraftStore) Delete(id uuid.UUID, actor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return &ErrDraftNotFound{DraftID: id}
	}
	if d.Owner != actor {
		return &ErrForbidden{ActorID: actor}
	}
	delete(s.drafts, id)
	return nil
}

// Len returns the number of drafts
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}
