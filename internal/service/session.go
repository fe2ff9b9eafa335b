package service

import (
	"context"

	"github.com/marga120/mds-application-sub000/internal/domain/session"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
)

// SessionService is the role resolver: it asks the external session service
// who is acting and with what capability level. Credential verification is
// entirely the session service's concern.
type SessionService interface {
	ResolveSession(ctx context.Context) (*session.Session, error)
}

type sessionService struct {
	ServiceParams
}

func NewSessionService(params ServiceParams) SessionService {
	return &sessionService{ServiceParams: params}
}

func (s *sessionService) ResolveSession(ctx context.Context) (*session.Session, error) {
	resolved, err := s.SessionRepo.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if !resolved.Authenticated {
		return nil, ierr.NewError("not authenticated").
			WithHint("Sign in to review applications").
			Mark(ierr.ErrPermissionDenied)
	}
	if err := resolved.Role.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Your session does not carry a recognized reviewer role").
			Mark(ierr.ErrPermissionDenied)
	}

	return resolved, nil
}
