package dto

import (
	"testing"
	"time"

	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/marga120/mds-application-sub000/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func init() {
	validator.NewValidator()
}

func TestProposeStatusRequestValidate(t *testing.T) {
	req := &ProposeStatusRequest{Status: string(types.StatusWaitlist)}
	assert.NoError(t, req.Validate())

	req = &ProposeStatusRequest{Status: "Graduated"}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	req = &ProposeStatusRequest{}
	assert.Error(t, req.Validate())
}

func TestUpdatePrerequisitesRequestRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  string
		wantErr bool
	}{
		{"no_rating", "", false},
		{"integer", "7", false},
		{"one_decimal", "7.3", false},
		{"trailing_zero", "7.30", false},
		{"lower_bound", "0", false},
		{"upper_bound", "10", false},
		{"upper_bound_decimal", "10.0", false},
		{"two_decimals", "7.25", true},
		{"above_max", "10.1", true},
		{"negative", "-0.1", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &UpdatePrerequisitesRequest{Comments: "ok"}
			if tc.rating != "" {
				rating, err := decimal.NewFromString(tc.rating)
				assert.NoError(t, err)
				req.Rating = &rating
			}

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateScholarshipRequestValidate(t *testing.T) {
	for _, decision := range []string{"Yes", "No", "Undecided"} {
		req := &UpdateScholarshipRequest{Decision: decision}
		assert.NoError(t, req.Validate(), "decision: %s", decision)
	}

	req := &UpdateScholarshipRequest{Decision: "Maybe"}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestUpdateEnglishStatusRequestScores(t *testing.T) {
	tests := []struct {
		name    string
		test    string
		score   string
		wantErr bool
	}{
		{"status_only", "", "", false},
		{"duolingo_min", "duolingo", "10", false},
		{"duolingo_max", "duolingo", "160", false},
		{"duolingo_above_max", "duolingo", "200", true},
		{"duolingo_below_min", "duolingo", "5", true},
		{"duolingo_fractional", "duolingo", "120.5", true},
		{"toefl_zero", "toefl", "0", false},
		{"toefl_max", "toefl", "120", false},
		{"toefl_above_max", "toefl", "121", true},
		{"toefl_negative", "toefl", "-1", true},
		{"ielts_half_band", "ielts", "6.5", false},
		{"ielts_whole_band", "ielts", "7", false},
		{"ielts_max", "ielts", "9", false},
		{"ielts_above_max", "ielts", "9.5", true},
		{"ielts_off_band", "ielts", "6.25", true},
		{"unknown_test", "cael", "60", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &UpdateEnglishStatusRequest{Status: "Met", Test: tc.test}
			if tc.score != "" {
				score, err := decimal.NewFromString(tc.score)
				assert.NoError(t, err)
				req.Score = &score
			}

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateEnglishStatusRequestMissingScore(t *testing.T) {
	req := &UpdateEnglishStatusRequest{Status: "Met", Test: "ielts"}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestUpdateEnglishStatusRequestEvidenceDate(t *testing.T) {
	past := time.Now().UTC().AddDate(-1, 0, 0)
	req := &UpdateEnglishStatusRequest{Status: "Met", EvidenceDate: &past}
	assert.NoError(t, req.Validate())

	// A future date is rejected even with an otherwise valid score.
	future := time.Now().UTC().AddDate(0, 0, 7)
	score := decimal.NewFromFloat(6.5)
	req = &UpdateEnglishStatusRequest{
		Status:       "Met",
		Test:         "ielts",
		Score:        &score,
		EvidenceDate: &future,
	}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestUpdateGPARequestValidate(t *testing.T) {
	req := &UpdateGPARequest{GPA: "3.9"}
	assert.NoError(t, req.Validate())

	req = &UpdateGPARequest{}
	assert.Error(t, req.Validate())
}
