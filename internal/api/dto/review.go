package dto

import (
	"time"

	"github.com/marga120/mds-application-sub000/internal/domain/review"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/rbac"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/marga120/mds-application-sub000/internal/validator"
	"github.com/shopspring/decimal"
)

var (
	ratingMin = decimal.NewFromInt(0)
	ratingMax = decimal.NewFromInt(10)

	duolingoMin = decimal.NewFromInt(10)
	duolingoMax = decimal.NewFromInt(160)
	toeflMax    = decimal.NewFromInt(120)
	ieltsMax    = decimal.NewFromInt(9)
)

// ReviewResponse is the open applicant's review surface: the held fields,
// the pending preview if any, and the field-access map for the acting role.
type ReviewResponse struct {
	Review      *review.Review                       `json:"review"`
	Preview     *review.Preview                      `json:"preview,omitempty"`
	Permissions map[types.ReviewField]rbac.FieldAccess `json:"permissions"`
}

type ProposeStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required"`
}

func (r *ProposeStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return types.ReviewStatus(r.Status).Validate()
}

// ProposeStatusResponse carries the preview computed for a proposal.
// Preview is nil and CommitEnabled false when the proposal was a no-op.
type ProposeStatusResponse struct {
	Preview       *review.Preview `json:"preview,omitempty"`
	CommitEnabled bool            `json:"commit_enabled"`
}

// CommitStatusResponse reports the outcome of a commit. Applied is false for
// the no-op case (a previous commit still in flight); History is populated
// from the post-commit audit re-read when the role may see it.
type CommitStatusResponse struct {
	Applied bool               `json:"applied"`
	Status  types.ReviewStatus `json:"status"`
	Preview *review.Preview    `json:"preview,omitempty"`
	History *HistoryResponse   `json:"history,omitempty"`
}

type UpdatePrerequisitesRequest struct {
	Computing  string           `json:"computing"`
	Statistics string           `json:"statistics"`
	Math       string           `json:"math"`
	Comments   string           `json:"comments"`
	Rating     *decimal.Decimal `json:"rating"`
}

func (r *UpdatePrerequisitesRequest) Validate() error {
	if r.Rating == nil {
		return nil
	}

	rating := *r.Rating
	if rating.LessThan(ratingMin) || rating.GreaterThan(ratingMax) {
		return ierr.NewError("rating out of range").
			WithHint("Rating must be between 0 and 10").
			WithReportableDetails(map[string]any{
				"rating": rating.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if !rating.Equal(rating.Round(1)) {
		return ierr.NewError("rating too precise").
			WithHint("Rating may carry at most one decimal place").
			WithReportableDetails(map[string]any{
				"rating": rating.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdatePrerequisitesRequest) ToPrerequisites() review.Prerequisites {
	return review.Prerequisites{
		Computing:  r.Computing,
		Statistics: r.Statistics,
		Math:       r.Math,
		Comments:   r.Comments,
		Rating:     r.Rating,
	}
}

type UpdateScholarshipRequest struct {
	Decision string `json:"decision" binding:"required" validate:"required"`
}

func (r *UpdateScholarshipRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return types.ScholarshipDecision(r.Decision).Validate()
}

type UpdateEnglishStatusRequest struct {
	Status       string           `json:"status" binding:"required" validate:"required"`
	Test         string           `json:"test,omitempty"`
	Score        *decimal.Decimal `json:"score,omitempty"`
	EvidenceDate *time.Time       `json:"evidence_date,omitempty"`
}

// Validate applies the client-side evidence rules before any collaborator
// call: score bounds per test, score precision, and no future-dated evidence
// regardless of score validity.
func (r *UpdateEnglishStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.EvidenceDate != nil && r.EvidenceDate.After(time.Now().UTC()) {
		return ierr.NewError("future-dated evidence").
			WithHint("Evidence date may not be in the future").
			WithReportableDetails(map[string]any{
				"evidence_date": r.EvidenceDate.Format(time.RFC3339),
			}).
			Mark(ierr.ErrValidation)
	}

	if r.Test == "" && r.Score == nil {
		return nil
	}

	test := types.EnglishTest(r.Test)
	if err := test.Validate(); err != nil {
		return err
	}
	if r.Score == nil {
		return ierr.NewError("missing test score").
			WithHintf("A score is required when reporting a %s result", r.Test).
			Mark(ierr.ErrValidation)
	}

	return validateScore(test, *r.Score)
}

func validateScore(test types.EnglishTest, score decimal.Decimal) error {
	outOfRange := func(min, max decimal.Decimal) error {
		return ierr.NewError("score out of range").
			WithHintf("A %s score must be between %s and %s", test, min, max).
			WithReportableDetails(map[string]any{
				"test":  test,
				"score": score.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	switch test {
	case types.EnglishTestDuolingo:
		if score.LessThan(duolingoMin) || score.GreaterThan(duolingoMax) {
			return outOfRange(duolingoMin, duolingoMax)
		}
		if !score.IsInteger() {
			return wholeScoreError(test, score)
		}
	case types.EnglishTestTOEFL:
		if score.IsNegative() || score.GreaterThan(toeflMax) {
			return outOfRange(ratingMin, toeflMax)
		}
		if !score.IsInteger() {
			return wholeScoreError(test, score)
		}
	case types.EnglishTestIELTS:
		if score.IsNegative() || score.GreaterThan(ieltsMax) {
			return outOfRange(ratingMin, ieltsMax)
		}
		// IELTS bands move in half steps
		if !score.Mul(decimal.NewFromInt(2)).IsInteger() {
			return ierr.NewError("invalid ielts band").
				WithHint("An IELTS band must be a multiple of 0.5").
				WithReportableDetails(map[string]any{
					"score": score.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func wholeScoreError(test types.EnglishTest, score decimal.Decimal) error {
	return ierr.NewError("fractional test score").
		WithHintf("A %s score must be a whole number", test).
		WithReportableDetails(map[string]any{
			"test":  test,
			"score": score.String(),
		}).
		Mark(ierr.ErrValidation)
}

func (r *UpdateEnglishStatusRequest) ToEnglishUpdate() review.EnglishUpdate {
	return review.EnglishUpdate{
		Status:       r.Status,
		Test:         types.EnglishTest(r.Test),
		Score:        r.Score,
		EvidenceDate: r.EvidenceDate,
	}
}

type UpdateGPARequest struct {
	GPA string `json:"gpa" binding:"required" validate:"required"`
}

func (r *UpdateGPARequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateResponse is returned by every field-group write.
type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
