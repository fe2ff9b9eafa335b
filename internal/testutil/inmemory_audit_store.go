package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/marga120/mds-application-sub000/internal/domain/audit"
)

// InMemoryAuditStore is an in-memory stand-in for the external system's
// status history. Recent returns entries most-recent first, honoring the
// limit, exactly like the collaborator read.
type InMemoryAuditStore struct {
	mu     sync.Mutex
	events map[string][]*audit.StatusChangeEvent
	calls  int
}

func NewInMemoryAuditStore() *InMemoryAuditStore {
	return &InMemoryAuditStore{
		events: make(map[string][]*audit.StatusChangeEvent),
	}
}

// Append records one event, the way the external system does on a
// successful status write.
func (s *InMemoryAuditStore) Append(event *audit.StatusChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ApplicantID] = append(s.events[event.ApplicantID], event)
}

func (s *InMemoryAuditStore) Recent(ctx context.Context, applicantID string, limit int) ([]*audit.StatusChangeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++

	events := make([]*audit.StatusChangeEvent, len(s.events[applicantID]))
	copy(events, s.events[applicantID])
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// Calls reports how many times Recent was queried.
func (s *InMemoryAuditStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Count returns the number of stored events for one applicant.
func (s *InMemoryAuditStore) Count(applicantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events[applicantID])
}

func (s *InMemoryAuditStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]*audit.StatusChangeEvent)
	s.calls = 0
}
