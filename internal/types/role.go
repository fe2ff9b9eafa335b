package types

import ierr "github.com/marga120/mds-application-sub000/internal/errors"

// Role is the acting user's capability level, resolved once per review
// session by the external session service and treated as immutable until the
// surface closes.
type Role string

const (
	RoleFullControl Role = "full-control"
	RoleEditLimited Role = "edit-limited"
	RoleReadOnly    Role = "read-only"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleFullControl, RoleEditLimited, RoleReadOnly:
		return nil
	}
	return ierr.NewError("invalid role").
		WithHintf("Role %q is not a recognized reviewer role", r).
		WithReportableDetails(map[string]any{
			"role": r,
		}).
		Mark(ierr.ErrValidation)
}

// ReviewField identifies one permission-gated piece of the review surface.
type ReviewField string

const (
	FieldStatus        ReviewField = "status"
	FieldGPA           ReviewField = "gpa"
	FieldPrerequisites ReviewField = "prerequisites"
	FieldRating        ReviewField = "rating"
	FieldScholarship   ReviewField = "scholarship"
	FieldEnglishStatus ReviewField = "english_status"
	FieldAuditHistory  ReviewField = "audit_history"
)

// AllReviewFields returns every gated field on the review surface.
func AllReviewFields() []ReviewField {
	return []ReviewField{
		FieldStatus,
		FieldGPA,
		FieldPrerequisites,
		FieldRating,
		FieldScholarship,
		FieldEnglishStatus,
		FieldAuditHistory,
	}
}
