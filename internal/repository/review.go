package repository

import (
	"context"
	"fmt"

	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/shopspring/decimal"
)

type reviewRepository struct {
	client *collaborator.Client
	logger *logger.Logger
}

func newReviewRepository(client *collaborator.Client, logger *logger.Logger) review.Repository {
	return &reviewRepository{client: client, logger: logger}
}

// reviewPayload is the wire shape of one applicant's review fields.
type reviewPayload struct {
	Status        string               `json:"status"`
	Prerequisites prerequisitesPayload `json:"prerequisites"`
	Scholarship   string               `json:"scholarship"`
	EnglishStatus string               `json:"english_status"`
	GPA           *string              `json:"gpa"`
}

type prerequisitesPayload struct {
	Computing  string           `json:"cs"`
	Statistics string           `json:"stat"`
	Math       string           `json:"math"`
	Comments   string           `json:"comments"`
	Rating     *decimal.Decimal `json:"rating"`
}

func (r *reviewRepository) Get(ctx context.Context, applicantID string) (*review.Review, error) {
	var payload reviewPayload
	if err := r.client.Get(ctx, fmt.Sprintf("/applicants/%s/review", applicantID), &payload); err != nil {
		return nil, err
	}

	result := &review.Review{
		ApplicantID: applicantID,
		Status:      types.ReviewStatus(payload.Status),
		Prerequisites: review.Prerequisites{
			Computing:  payload.Prerequisites.Computing,
			Statistics: payload.Prerequisites.Statistics,
			Math:       payload.Prerequisites.Math,
			Comments:   payload.Prerequisites.Comments,
			Rating:     payload.Prerequisites.Rating,
		},
		Scholarship:   types.ScholarshipDecision(payload.Scholarship),
		EnglishStatus: payload.EnglishStatus,
		GPA:           payload.GPA,
	}

	// A record created before its first review comes back with empty fields
	if result.Status == "" {
		result.Status = types.StatusNotReviewed
	}
	if result.Scholarship == "" {
		result.Scholarship = types.ScholarshipUndecided
	}
	return result, nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, applicantID string, status types.ReviewStatus) error {
	return r.client.Put(ctx, fmt.Sprintf("/applicants/%s/status", applicantID), map[string]string{
		"status": status.String(),
	})
}

func (r *reviewRepository) UpdatePrerequisites(ctx context.Context, applicantID string, prereqs review.Prerequisites) error {
	return r.client.Put(ctx, fmt.Sprintf("/applicants/%s/prerequisites", applicantID), prerequisitesPayload{
		Computing:  prereqs.Computing,
		Statistics: prereqs.Statistics,
		Math:       prereqs.Math,
		Comments:   prereqs.Comments,
		Rating:     prereqs.Rating,
	})
}

func (r *reviewRepository) UpdateScholarship(ctx context.Context, applicantID string, decision types.ScholarshipDecision) error {
	return r.client.Put(ctx, fmt.Sprintf("/applicants/%s/scholarship", applicantID), map[string]string{
		"scholarship": string(decision),
	})
}

func (r *reviewRepository) UpdateEnglishStatus(ctx context.Context, applicantID string, update review.EnglishUpdate) error {
	return r.client.Put(ctx, fmt.Sprintf("/applicants/%s/english-status", applicantID), update)
}

func (r *reviewRepository) UpdateGPA(ctx context.Context, applicantID string, gpa string) error {
	return r.client.Put(ctx, fmt.Sprintf("/applicants/%s/gpa", applicantID), map[string]string{
		"gpa": gpa,
	})
}
