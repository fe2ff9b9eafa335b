package service

import (
	"context"

	"github.com/marga120/mds-application-sub000/internal/api/dto"
	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// AuditService exposes the read path over the applicant's status history.
// This layer never writes events; the external admissions system records one
// per successful status write.
type AuditService interface {
	Recent(ctx context.Context) (*dto.HistoryResponse, error)
}

type auditService struct {
	ServiceParams
}

func NewAuditService(params ServiceParams) AuditService {
	return &auditService{ServiceParams: params}
}

// Recent returns the most recent entries for the open applicant. A role
// without history visibility gets the static placeholder and the
// collaborator is not queried at all, so no capability error leaks.
func (s *auditService) Recent(ctx context.Context) (*dto.HistoryResponse, error) {
	role := types.GetRole(ctx)
	if err := role.Validate(); err != nil {
		return nil, ierr.NewError("no resolved role").
			WithHint("Your session does not carry a reviewer role").
			Mark(ierr.ErrPermissionDenied)
	}

	if !s.Gate.CanView(role, types.FieldAuditHistory) {
		return dto.HistoryPlaceholder(), nil
	}

	applicantID := s.Store.ApplicantID()
	if applicantID == "" {
		return nil, ierr.NewError("no applicant open").
			WithHint("Open an applicant's review surface first").
			Mark(ierr.ErrNotFound)
	}

	events, err := s.AuditRepo.Recent(ctx, applicantID, audit.DefaultRecentLimit)
	if err != nil {
		return nil, err
	}
	return dto.HistoryFromEvents(events), nil
}
