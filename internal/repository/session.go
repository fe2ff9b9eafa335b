package repository

import (
	"context"

	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/domain/session"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/types"
)

type sessionRepository struct {
	client *collaborator.Client
	logger *logger.Logger
}

func newSessionRepository(client *collaborator.Client, logger *logger.Logger) session.Repository {
	return &sessionRepository{client: client, logger: logger}
}

type sessionPayload struct {
	Authenticated bool `json:"authenticated"`
	User          struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
}

func (r *sessionRepository) Resolve(ctx context.Context) (*session.Session, error) {
	var payload sessionPayload
	if err := r.client.Get(ctx, "/session", &payload); err != nil {
		return nil, err
	}

	return &session.Session{
		Authenticated: payload.Authenticated,
		UserName:      payload.User.Name,
		Role:          types.Role(payload.User.Role),
	}, nil
}
