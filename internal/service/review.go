package service

import (
	"context"

	"github.com/marga120/mds-application-sub000/internal/api/dto"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/panelsync"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// ReviewService coordinates the open applicant's review surface: loading the
// state store, the propose/commit transition protocol, and the per-field
// writes that travel with the status.
type ReviewService interface {
	Open(ctx context.Context, applicantID string) (*dto.ReviewResponse, error)
	Current(ctx context.Context) (*dto.ReviewResponse, error)
	Propose(ctx context.Context, req *dto.ProposeStatusRequest) (*dto.ProposeStatusResponse, error)
	Commit(ctx context.Context) (*dto.CommitStatusResponse, error)
	UpdatePrerequisites(ctx context.Context, req *dto.UpdatePrerequisitesRequest) (*dto.UpdateResponse, error)
	UpdateScholarship(ctx context.Context, req *dto.UpdateScholarshipRequest) (*dto.UpdateResponse, error)
	UpdateEnglishStatus(ctx context.Context, req *dto.UpdateEnglishStatusRequest) (*dto.UpdateResponse, error)
	UpdateGPA(ctx context.Context, req *dto.UpdateGPARequest) (*dto.UpdateResponse, error)
}

type reviewService struct {
	ServiceParams
	auditService AuditService
}

func NewReviewService(params ServiceParams, auditService AuditService) ReviewService {
	return &reviewService{
		ServiceParams: params,
		auditService:  auditService,
	}
}

// Open loads the applicant's review fields into the state store, replacing
// whatever applicant was open before. A commit still in flight for the
// previous applicant is orphaned; its result will be dropped as stale.
func (s *reviewService) Open(ctx context.Context, applicantID string) (*dto.ReviewResponse, error) {
	role, err := s.requireRole(ctx)
	if err != nil {
		return nil, err
	}

	if applicantID == "" {
		return nil, ierr.NewError("missing applicant id").
			WithHint("An applicant id is required").
			Mark(ierr.ErrValidation)
	}

	loaded, err := s.ReviewRepo.Get(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	s.Store.Load(loaded)
	s.Logger.Infow("review surface opened",
		"applicant_id", applicantID,
		"status", loaded.Status,
		"role", role,
	)

	return s.currentResponse(role)
}

// Current returns the held fields plus the field-access map, re-resolved for
// the acting role on every call so a role change is never served a cached
// gate result.
func (s *reviewService) Current(ctx context.Context) (*dto.ReviewResponse, error) {
	role, err := s.requireRole(ctx)
	if err != nil {
		return nil, err
	}
	return s.currentResponse(role)
}

// Propose computes the transition preview. Proposing the current value is a
// no-op: any pending preview is cleared and commit is disabled.
func (s *reviewService) Propose(ctx context.Context, req *dto.ProposeStatusRequest) (*dto.ProposeStatusResponse, error) {
	role, err := s.requireRole(ctx)
	if err != nil {
		return nil, err
	}
	if !s.Gate.CanEdit(role, types.FieldStatus) {
		return nil, ierr.NewError("status change not permitted").
			WithHint("Your role may not change the review status").
			Mark(ierr.ErrPermissionDenied)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	preview, err := s.Store.SetPending(types.ReviewStatus(req.Status))
	if err != nil {
		return nil, err
	}

	return &dto.ProposeStatusResponse{
		Preview:       preview,
		CommitEnabled: preview != nil,
	}, nil
}

// Commit persists the pending preview through one collaborator write. While
// a previous commit is still pending the call is a no-op. On failure the
// store keeps its pre-commit value and the preview stays visible so the
// operator can retry.
func (s *reviewService) Commit(ctx context.Context) (*dto.CommitStatusResponse, error) {
	role, err := s.requireRole(ctx)
	if err != nil {
		return nil, err
	}
	if role != types.RoleFullControl {
		return nil, ierr.NewError("commit not permitted").
			WithHint("Only a full-control reviewer may commit a status change").
			Mark(ierr.ErrPermissionDenied)
	}

	if s.Store.CommitInFlight() {
		return s.noopCommitResponse()
	}

	generation, preview, err := s.Store.BeginCommit()
	if err != nil {
		return nil, err
	}

	applicantID := s.Store.ApplicantID()
	if err := s.ReviewRepo.UpdateStatus(ctx, applicantID, preview.NewValue); err != nil {
		s.Store.FailCommit(generation)
		s.Logger.Warnw("status commit failed",
			"applicant_id", applicantID,
			"old_value", preview.OldValue,
			"new_value", preview.NewValue,
			"error", err,
		)
		return nil, err
	}

	applied := s.Store.CompleteCommit(generation, preview.NewValue)
	if !applied {
		// The operator navigated to a different applicant while the write
		// was in flight; the result is dropped, not applied to whoever is
		// open now.
		s.Logger.Infow("dropping stale commit result",
			"applicant_id", applicantID,
			"new_value", preview.NewValue,
		)
		return &dto.CommitStatusResponse{Applied: false}, nil
	}

	if err := s.Sync.Broadcast(ctx, panelsync.StatusUpdate{
		ApplicantID: applicantID,
		Status:      preview.NewValue,
		ActorName:   types.GetUserName(ctx),
	}); err != nil {
		// Surfaces catch up on the next load; the commit itself stands
		s.Logger.Errorw("status broadcast failed",
			"applicant_id", applicantID,
			"error", err,
		)
	}

	history, err := s.auditService.Recent(ctx)
	if err != nil {
		s.Logger.Warnw("post-commit history read failed",
			"applicant_id", applicantID,
			"error", err,
		)
		history = nil
	}

	return &dto.CommitStatusResponse{
		Applied: true,
		Status:  preview.NewValue,
		History: history,
	}, nil
}

func (s *reviewService) UpdatePrerequisites(ctx context.Context, req *dto.UpdatePrerequisitesRequest) (*dto.UpdateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.updateFieldGroup(ctx, types.FieldPrerequisites, func(ctx context.Context, applicantID string) error {
		return s.ReviewRepo.UpdatePrerequisites(ctx, applicantID, req.ToPrerequisites())
	}, func(r *review.Review) {
		r.Prerequisites = req.ToPrerequisites()
	})
}

func (s *reviewService) UpdateScholarship(ctx context.Context, req *dto.UpdateScholarshipRequest) (*dto.UpdateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	decision := types.ScholarshipDecision(req.Decision)
	return s.updateFieldGroup(ctx, types.FieldScholarship, func(ctx context.Context, applicantID string) error {
		return s.ReviewRepo.UpdateScholarship(ctx, applicantID, decision)
	}, func(r *review.Review) {
		r.Scholarship = decision
	})
}

func (s *reviewService) UpdateEnglishStatus(ctx context.Context, req *dto.UpdateEnglishStatusRequest) (*dto.UpdateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.updateFieldGroup(ctx, types.FieldEnglishStatus, func(ctx context.Context, applicantID string) error {
		return s.ReviewRepo.UpdateEnglishStatus(ctx, applicantID, req.ToEnglishUpdate())
	}, func(r *review.Review) {
		r.EnglishStatus = req.Status
	})
}

func (s *reviewService) UpdateGPA(ctx context.Context, req *dto.UpdateGPARequest) (*dto.UpdateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.updateFieldGroup(ctx, types.FieldGPA, func(ctx context.Context, applicantID string) error {
		return s.ReviewRepo.UpdateGPA(ctx, applicantID, req.GPA)
	}, func(r *review.Review) {
		gpa := req.GPA
		r.GPA = &gpa
	})
}

// updateFieldGroup runs one collaborator write for a field group and applies
// the result to the store only when no newer Load superseded it.
func (s *reviewService) updateFieldGroup(
	ctx context.Context,
	field types.ReviewField,
	write func(ctx context.Context, applicantID string) error,
	apply func(*review.Review),
) (*dto.UpdateResponse, error) {
	role, err := s.requireRole(ctx)
	if err != nil {
		return nil, err
	}
	if !s.Gate.CanEdit(role, field) {
		return nil, ierr.NewError("field not editable").
			WithHintf("Your role may not edit %s", field).
			Mark(ierr.ErrPermissionDenied)
	}

	applicantID := s.Store.ApplicantID()
	if applicantID == "" {
		return nil, ierr.NewError("no applicant open").
			WithHint("Open an applicant's review surface first").
			Mark(ierr.ErrNotFound)
	}

	generation := s.Store.Generation()
	if err := write(ctx, applicantID); err != nil {
		return nil, err
	}

	if !s.Store.ApplyIfCurrent(generation, apply) {
		s.Logger.Infow("dropping stale field update result",
			"applicant_id", applicantID,
			"field", field,
		)
	}
	return &dto.UpdateResponse{Success: true}, nil
}

func (s *reviewService) requireRole(ctx context.Context) (types.Role, error) {
	role := types.GetRole(ctx)
	if err := role.Validate(); err != nil {
		return "", ierr.NewError("no resolved role").
			WithHint("Your session does not carry a reviewer role").
			Mark(ierr.ErrPermissionDenied)
	}
	return role, nil
}

func (s *reviewService) currentResponse(role types.Role) (*dto.ReviewResponse, error) {
	current, err := s.Store.Current()
	if err != nil {
		return nil, err
	}
	return &dto.ReviewResponse{
		Review:      current,
		Preview:     s.Store.Pending(),
		Permissions: s.Gate.ResolveAll(role),
	}, nil
}

func (s *reviewService) noopCommitResponse() (*dto.CommitStatusResponse, error) {
	status, err := s.Store.CurrentStatus()
	if err != nil {
		return nil, err
	}
	return &dto.CommitStatusResponse{
		Applied: false,
		Status:  status,
		Preview: s.Store.Pending(),
	}, nil
}
