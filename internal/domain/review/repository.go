package review

import (
	"context"

	"github.com/marga120/mds-application-sub000/internal/types"
)

// Repository is the write/read surface the external admissions system exposes
// for one applicant's review fields. Every write is one call per field group
// and shares the {success, message} envelope; a success=false response
// surfaces as a collaborator-rejected error.
type Repository interface {
	Get(ctx context.Context, applicantID string) (*Review, error)
	UpdateStatus(ctx context.Context, applicantID string, status types.ReviewStatus) error
	UpdatePrerequisites(ctx context.Context, applicantID string, prereqs Prerequisites) error
	UpdateScholarship(ctx context.Context, applicantID string, decision types.ScholarshipDecision) error
	UpdateEnglishStatus(ctx context.Context, applicantID string, update EnglishUpdate) error
	UpdateGPA(ctx context.Context, applicantID string, gpa string) error
}
