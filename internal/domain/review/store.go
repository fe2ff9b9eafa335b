package review

import (
	"sync"

	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// Store is the in-memory authoritative copy of the one currently-open
// applicant's review fields. Load replaces the contents wholesale; every
// other mutation goes through the commit protocol so a failed collaborator
// call can never leave an optimistic value behind.
//
// The generation counter guards against stale in-flight results: a
// collaborator response that started before a newer Load carries an old
// generation and is dropped instead of being applied to whatever applicant
// is open now.
type Store struct {
	mu         sync.Mutex
	generation uint64
	review     *Review
	pending    *Preview
	inFlight   bool
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the store contents with a fresh collaborator read. Any
// pending preview is discarded and a commit still in flight for the previous
// applicant is orphaned: its eventual result fails the generation check.
func (s *Store) Load(r *Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.review = cloneReview(r)
	s.pending = nil
	s.inFlight = false
}

// ApplicantID returns the open applicant's id, or "" when no surface is open.
func (s *Store) ApplicantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.review == nil {
		return ""
	}
	return s.review.ApplicantID
}

// Current returns a copy of the open applicant's review fields.
func (s *Store) Current() (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.review == nil {
		return nil, ierr.NewError("no applicant open").
			WithHint("Open an applicant's review surface first").
			Mark(ierr.ErrNotFound)
	}
	return cloneReview(s.review), nil
}

// CurrentStatus returns the open applicant's review status.
func (s *Store) CurrentStatus() (types.ReviewStatus, error) {
	r, err := s.Current()
	if err != nil {
		return "", err
	}
	return r.Status, nil
}

// SetPending records a proposed status. Proposing the current value is a
// no-op: the preview is cleared and nil is returned, which disables commit.
func (s *Store) SetPending(newValue types.ReviewStatus) (*Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.review == nil {
		return nil, ierr.NewError("no applicant open").
			WithHint("Open an applicant's review surface first").
			Mark(ierr.ErrNotFound)
	}

	if newValue == s.review.Status {
		s.pending = nil
		return nil, nil
	}

	s.pending = &Preview{OldValue: s.review.Status, NewValue: newValue}
	preview := *s.pending
	return &preview, nil
}

// Pending returns the current preview, or nil when commit is disabled.
func (s *Store) Pending() *Preview {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil
	}
	preview := *s.pending
	return &preview
}

// CommitInFlight reports whether a commit is currently pending.
func (s *Store) CommitInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// BeginCommit acquires the scoped in-flight lock and returns the generation
// and preview the commit must carry. It fails when no preview exists or when
// another commit is already pending for this surface.
func (s *Store) BeginCommit() (uint64, Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.review == nil {
		return 0, Preview{}, ierr.NewError("no applicant open").
			WithHint("Open an applicant's review surface first").
			Mark(ierr.ErrNotFound)
	}
	if s.pending == nil {
		return 0, Preview{}, ierr.NewError("no pending status change").
			WithHint("Propose a different status before committing").
			Mark(ierr.ErrInvalidOperation)
	}
	if s.inFlight {
		return 0, Preview{}, ierr.NewError("commit already in flight").
			WithHint("A status change is already being saved").
			Mark(ierr.ErrInvalidOperation)
	}

	s.inFlight = true
	return s.generation, *s.pending, nil
}

// CompleteCommit applies a successful commit result. A result carrying a
// stale generation is dropped: the caller navigated away and the store now
// holds a different applicant. Returns whether the result was applied.
func (s *Store) CompleteCommit(generation uint64, status types.ReviewStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || s.review == nil {
		return false
	}

	s.review.Status = status
	s.pending = nil
	s.inFlight = false
	return true
}

// FailCommit releases the in-flight lock after a failed collaborator call.
// The held status and the preview are left intact so the operator can retry
// without re-entering anything.
func (s *Store) FailCommit(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return
	}
	s.inFlight = false
}

// Generation returns the load generation to carry across a field-group write.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// ApplyIfCurrent mutates the held review when the generation still matches,
// and reports whether the mutation was applied. Field-group writes use this
// so a slow collaborator response for a previously-open applicant is dropped.
func (s *Store) ApplyIfCurrent(generation uint64, apply func(*Review)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || s.review == nil {
		return false
	}
	apply(s.review)
	return true
}

func cloneReview(r *Review) *Review {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Prerequisites.Rating != nil {
		rating := *r.Prerequisites.Rating
		clone.Prerequisites.Rating = &rating
	}
	if r.GPA != nil {
		gpa := *r.GPA
		clone.GPA = &gpa
	}
	return &clone
}
