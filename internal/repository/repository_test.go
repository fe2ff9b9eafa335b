package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cockroachErrors "github.com/cockroachdb/errors"
	"github.com/marga120/mds-application-sub000/internal/collaborator"
	"github.com/marga120/mds-application-sub000/internal/config"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *collaborator.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	})
	require.NoError(t, err)

	return collaborator.NewClient(&config.Configuration{
		Collaborator: config.CollaboratorConfig{
			BaseURL:      server.URL,
			Timeout:      5 * time.Second,
			RetryMax:     0,
			RetryWaitMin: time.Millisecond,
			RetryWaitMax: time.Millisecond,
		},
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	}, log)
}

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	})
	require.NoError(t, err)
	return log
}

func TestReviewRepositoryGet(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/applicants/app-001/review", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "Waitlist",
			"prerequisites": map[string]any{
				"cs":       "CPSC 110",
				"stat":     "STAT 200",
				"math":     "MATH 100",
				"comments": "solid",
				"rating":   "7.5",
			},
			"scholarship":    "Yes",
			"english_status": "Met",
			"gpa":            "3.8",
		})
	}))

	repo := NewReviewRepository(client, testLogger(t))
	review, err := repo.Get(context.Background(), "app-001")
	require.NoError(t, err)

	assert.Equal(t, "app-001", review.ApplicantID)
	assert.Equal(t, types.StatusWaitlist, review.Status)
	assert.Equal(t, "CPSC 110", review.Prerequisites.Computing)
	assert.Equal(t, types.ScholarshipYes, review.Scholarship)
	assert.Equal(t, "Met", review.EnglishStatus)
	require.NotNil(t, review.GPA)
	assert.Equal(t, "3.8", *review.GPA)
	require.NotNil(t, review.Prerequisites.Rating)
	assert.Equal(t, "7.5", review.Prerequisites.Rating.String())
}

func TestReviewRepositoryGetDefaultsEmptyFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))

	repo := NewReviewRepository(client, testLogger(t))
	review, err := repo.Get(context.Background(), "app-001")
	require.NoError(t, err)

	assert.Equal(t, types.StatusNotReviewed, review.Status)
	assert.Equal(t, types.ScholarshipUndecided, review.Scholarship)
	assert.Nil(t, review.GPA)
}

func TestReviewRepositoryGetNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	repo := NewReviewRepository(client, testLogger(t))
	_, err := repo.Get(context.Background(), "app-999")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestReviewRepositoryUpdateStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/applicants/app-001/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Waitlist", body["status"])

		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	repo := NewReviewRepository(client, testLogger(t))
	err := repo.UpdateStatus(context.Background(), "app-001", types.StatusWaitlist)
	assert.NoError(t, err)
}

func TestReviewRepositoryUpdateStatusRejected(t *testing.T) {
	rejection := "Offer cannot be accepted before it is sent"
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The rejection travels in a 200 envelope, not an error status.
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": rejection,
		})
	}))

	repo := NewReviewRepository(client, testLogger(t))
	err := repo.UpdateStatus(context.Background(), "app-001", types.StatusOfferAccepted)
	require.Error(t, err)
	assert.True(t, ierr.IsCollaboratorRejected(err))
	assert.Contains(t, cockroachErrors.GetAllHints(err), rejection)
}

func TestReviewRepositoryUpdateStatusServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	repo := NewReviewRepository(client, testLogger(t))
	err := repo.UpdateStatus(context.Background(), "app-001", types.StatusWaitlist)
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}

func TestReviewRepositoryUnreachable(t *testing.T) {
	log := testLogger(t)
	client := collaborator.NewClient(&config.Configuration{
		Collaborator: config.CollaboratorConfig{
			BaseURL:      "http://127.0.0.1:1",
			Timeout:      time.Second,
			RetryMax:     0,
			RetryWaitMin: time.Millisecond,
			RetryWaitMax: time.Millisecond,
		},
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	}, log)

	repo := NewReviewRepository(client, log)
	err := repo.UpdateStatus(context.Background(), "app-001", types.StatusWaitlist)
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}

func TestAuditRepositoryRecent(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applicants/app-001/status-history", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"applicant_id": "app-001",
				"actor_name":   "Jane Reviewer",
				"old_value":    "Not Reviewed",
				"new_value":    "Waitlist",
				"created_at":   now.Format(time.RFC3339),
			},
		})
	}))

	repo := NewAuditRepository(client, testLogger(t))
	events, err := repo.Recent(context.Background(), "app-001", 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Jane Reviewer", events[0].ActorName)
	assert.Equal(t, types.StatusNotReviewed, events[0].OldValue)
	assert.Equal(t, types.StatusWaitlist, events[0].NewValue)
	assert.True(t, events[0].CreatedAt.Equal(now))
}

func TestAcademicRepositoryList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applicants/app-001/academic-records", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"institution_number": 1,
				"credential_receive": "Bachelor of Science",
				"program_study":      "Statistics",
				"date_confer":        "2021-06-01",
				"gpa":                "3.7",
			},
			{
				"institution_number": 2,
				"credential_receive": "Master of Data Science",
				"program_study":      "Data Science",
				"date_confer":        "not a date",
				"gpa":                nil,
			},
			{
				"institution_number": 3,
				"credential_receive": nil,
				"program_study":      nil,
				"date_confer":        nil,
				"gpa":                nil,
			},
		})
	}))

	repo := NewAcademicRepository(client, testLogger(t))
	records, err := repo.List(context.Background(), "app-001")
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.NotNil(t, records[0].DateConfer)
	assert.Equal(t, 2021, records[0].DateConfer.Year())

	// A malformed conferral date degrades to absent, not an error.
	assert.NotNil(t, records[1].CredentialReceive)
	assert.Nil(t, records[1].DateConfer)

	assert.Nil(t, records[2].CredentialReceive)
}

func TestSessionRepositoryResolve(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/session", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"authenticated": true,
			"user": map[string]any{
				"name": "Jane Reviewer",
				"role": "edit-limited",
			},
		})
	}))

	repo := NewSessionRepository(client, testLogger(t))
	resolved, err := repo.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, resolved.Authenticated)
	assert.Equal(t, "Jane Reviewer", resolved.UserName)
	assert.Equal(t, types.RoleEditLimited, resolved.Role)
}

func TestSessionRepositoryUnauthenticated(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"authenticated": false})
	}))

	repo := NewSessionRepository(client, testLogger(t))
	resolved, err := repo.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, resolved.Authenticated)
}
