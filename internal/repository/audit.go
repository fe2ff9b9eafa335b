package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/samber/lo"
)

type auditRepository struct {
	client *collaborator.Client
	logger *logger.Logger
}

func newAuditRepository(client *collaborator.Client, logger *logger.Logger) audit.Repository {
	return &auditRepository{client: client, logger: logger}
}

type statusChangePayload struct {
	ApplicantID string    `json:"applicant_id"`
	ActorName   string    `json:"actor_name"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *auditRepository) Recent(ctx context.Context, applicantID string, limit int) ([]*audit.StatusChangeEvent, error) {
	if limit <= 0 {
		limit = audit.DefaultRecentLimit
	}

	var payload []statusChangePayload
	path := fmt.Sprintf("/applicants/%s/status-history?limit=%d", applicantID, limit)
	if err := r.client.Get(ctx, path, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload, func(p statusChangePayload, _ int) *audit.StatusChangeEvent {
		return &audit.StatusChangeEvent{
			ApplicantID: p.ApplicantID,
			ActorName:   p.ActorName,
			OldValue:    types.ReviewStatus(p.OldValue),
			NewValue:    types.ReviewStatus(p.NewValue),
			CreatedAt:   p.CreatedAt,
		}
	}), nil
}
