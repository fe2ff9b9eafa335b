package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// InMemoryReviewStore is an in-memory stand-in for the external admissions
// system's review fields. A successful status write also appends a
// StatusChangeEvent to the linked audit store, emulating the external
// system's own audit trail.
type InMemoryReviewStore struct {
	mu      sync.Mutex
	reviews map[string]*review.Review
	audit   *InMemoryAuditStore

	failNext   error
	writeCalls int

	// OnWrite runs inside every write, before it is applied. Tests use it
	// to interleave a Load with an in-flight collaborator call.
	OnWrite func()
}

func NewInMemoryReviewStore(auditStore *InMemoryAuditStore) *InMemoryReviewStore {
	return &InMemoryReviewStore{
		reviews: make(map[string]*review.Review),
		audit:   auditStore,
	}
}

// Seed installs an applicant's persisted review fields.
func (s *InMemoryReviewStore) Seed(r *review.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.ApplicantID] = r
}

// FailNextWrite makes the next write fail with a transport error.
func (s *InMemoryReviewStore) FailNextWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = ierr.WithError(errors.New("connection refused")).
		WithHint("The admissions system is unreachable, please retry").
		Mark(ierr.ErrHTTPClient)
}

// RejectNextWrite makes the next write fail with a success=false envelope
// carrying the given message.
func (s *InMemoryReviewStore) RejectNextWrite(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = ierr.NewError("collaborator rejected the write").
		WithHint(message).
		Mark(ierr.ErrCollaboratorRejected)
}

// WriteCalls reports how many writes reached the store.
func (s *InMemoryReviewStore) WriteCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeCalls
}

func (s *InMemoryReviewStore) Get(ctx context.Context, applicantID string) (*review.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.reviews[applicantID]
	if !exists {
		return nil, ierr.NewError("resource not found").
			WithHint("The requested applicant record does not exist").
			Mark(ierr.ErrNotFound)
	}
	clone := *r
	return &clone, nil
}

func (s *InMemoryReviewStore) UpdateStatus(ctx context.Context, applicantID string, status types.ReviewStatus) error {
	r, err := s.beginWrite(applicantID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	oldValue := r.Status
	r.Status = status

	if s.audit != nil {
		s.audit.Append(&audit.StatusChangeEvent{
			ApplicantID: applicantID,
			ActorName:   types.GetUserName(ctx),
			OldValue:    oldValue,
			NewValue:    status,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return nil
}

func (s *InMemoryReviewStore) UpdatePrerequisites(ctx context.Context, applicantID string, prereqs review.Prerequisites) error {
	r, err := s.beginWrite(applicantID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.Prerequisites = prereqs
	return nil
}

func (s *InMemoryReviewStore) UpdateScholarship(ctx context.Context, applicantID string, decision types.ScholarshipDecision) error {
	r, err := s.beginWrite(applicantID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.Scholarship = decision
	return nil
}

func (s *InMemoryReviewStore) UpdateEnglishStatus(ctx context.Context, applicantID string, update review.EnglishUpdate) error {
	r, err := s.beginWrite(applicantID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.EnglishStatus = update.Status
	return nil
}

func (s *InMemoryReviewStore) UpdateGPA(ctx context.Context, applicantID string, gpa string) error {
	r, err := s.beginWrite(applicantID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.GPA = &gpa
	return nil
}

func (s *InMemoryReviewStore) beginWrite(applicantID string) (*review.Review, error) {
	s.mu.Lock()
	s.writeCalls++
	onWrite := s.OnWrite
	failNext := s.failNext
	s.failNext = nil
	r, exists := s.reviews[applicantID]
	s.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
	if failNext != nil {
		return nil, failNext
	}
	if !exists {
		return nil, ierr.NewError("resource not found").
			WithHint("The requested applicant record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return r, nil
}

func (s *InMemoryReviewStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = make(map[string]*review.Review)
	s.failNext = nil
	s.writeCalls = 0
	s.OnWrite = nil
}
