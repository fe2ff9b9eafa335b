package testutil

import (
	"context"
	"sync"

	"github.com/marga120/mds-application-sub000/internal/domain/academic"
)

// InMemoryAcademicStore is an in-memory stand-in for the external system's
// institution history.
type InMemoryAcademicStore struct {
	mu      sync.Mutex
	records map[string][]*academic.AcademicRecord
}

func NewInMemoryAcademicStore() *InMemoryAcademicStore {
	return &InMemoryAcademicStore{
		records: make(map[string][]*academic.AcademicRecord),
	}
}

// Seed installs an applicant's institution history.
func (s *InMemoryAcademicStore) Seed(applicantID string, records []*academic.AcademicRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[applicantID] = records
}

// Append adds one record to an applicant's institution history.
func (s *InMemoryAcademicStore) Append(applicantID string, record *academic.AcademicRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[applicantID] = append(s.records[applicantID], record)
}

func (s *InMemoryAcademicStore) List(ctx context.Context, applicantID string) ([]*academic.AcademicRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*academic.AcademicRecord, len(s.records[applicantID]))
	copy(records, s.records[applicantID])
	return records, nil
}

func (s *InMemoryAcademicStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string][]*academic.AcademicRecord)
}
