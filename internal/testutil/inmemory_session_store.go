package testutil

import (
	"context"
	"sync"

	"github.com/marga120/mds-application-sub000/internal/domain/session"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// InMemorySessionStore is an in-memory stand-in for the external session
// service.
type InMemorySessionStore struct {
	mu      sync.Mutex
	session *session.Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		session: &session.Session{
			Authenticated: true,
			UserName:      "Test Reviewer",
			Role:          types.RoleFullControl,
		},
	}
}

// SetSession replaces the resolved session.
func (s *InMemorySessionStore) SetSession(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
}

func (s *InMemorySessionStore) Resolve(ctx context.Context) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *s.session
	return &clone, nil
}
