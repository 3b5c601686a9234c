package store

import (
	"context"
	"sync"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// MemoryStore keeps submissions in a map. Used in tests and when no
// Redis is available.
type MemoryStore struct {
	mu    sync.RWMutex
	leads map[string]models.LeadSubmission
}

// NewMemoryStore creates an in-memory submission store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leads: make(map[string]models.LeadSubmission)}
}

// Save stores the lead under its reference id.
func (s *MemoryStore) Save(_ context.Context, lead *models.LeadSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *lead
	copied.Fields = lead.Fields.Clone()
	s.leads[lead.ReferenceID] = copied
	return nil
}

// Get loads a lead by reference id.
func (s *MemoryStore) Get(_ context.Context, referenceID string) (*models.LeadSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lead, ok := s.leads[referenceID]
	if !ok {
		return nil, ErrNotFound
	}
	out := lead
	out.Fields = lead.Fields.Clone()
	return &out, nil
}

// Count returns the number of stored submissions.
func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.leads)), nil
}
