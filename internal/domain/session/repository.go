package session

import "context"

// Repository resolves the current session against the external session
// service.
type Repository interface {
	Resolve(ctx context.Context) (*Session, error)
}
