package review

import (
	"time"

	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Review holds one applicant's mutable review fields. The authoritative copy
// for the open surface lives in Store; the external admissions system owns
// the persisted record.
type Review struct {
	ApplicantID   string                    `json:"applicant_id"`
	Status        types.ReviewStatus        `json:"status"`
	Prerequisites Prerequisites             `json:"prerequisites"`
	Scholarship   types.ScholarshipDecision `json:"scholarship"`
	EnglishStatus string                    `json:"english_status"`
	GPA           *string                   `json:"gpa"`
}

// Prerequisites carries the three subject notes, the general comments and the
// 0-10 rating shown on the prerequisites tab.
type Prerequisites struct {
	Computing  string           `json:"computing"`
	Statistics string           `json:"statistics"`
	Math       string           `json:"math"`
	Comments   string           `json:"comments"`
	Rating     *decimal.Decimal `json:"rating"`
}

// EnglishUpdate is one English-status write: the new sub-status plus the test
// evidence backing it, when the operator supplied any.
type EnglishUpdate struct {
	Status       string            `json:"status"`
	Test         types.EnglishTest `json:"test,omitempty"`
	Score        *decimal.Decimal  `json:"score,omitempty"`
	EvidenceDate *time.Time        `json:"evidence_date,omitempty"`
}

// Preview is the (old, new) status pair shown to the operator before they
// confirm a transition.
type Preview struct {
	OldValue types.ReviewStatus `json:"old_value"`
	NewValue types.ReviewStatus `json:"new_value"`
}

// NewReview returns the review record for a newly-created applicant.
func NewReview(applicantID string) *Review {
	return &Review{
		ApplicantID: applicantID,
		Status:      types.StatusNotReviewed,
		Scholarship: types.ScholarshipUndecided,
	}
}
