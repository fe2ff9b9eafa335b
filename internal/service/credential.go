package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/marga120/mds-application-sub000/internal/api/dto"
	"github.com/marga120/mds-application-sub000/internal/cache"
	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
)

// CredentialService derives the best-credential summary from an applicant's
// institution history. The ranking itself is a pure function; the service
// adds the collaborator read and a memoization keyed by the record list's
// identity, which leaves observable behavior unchanged.
type CredentialService interface {
	Summary(ctx context.Context, applicantID string) (*dto.CredentialSummaryResponse, error)
}

type credentialService struct {
	ServiceParams
}

func NewCredentialService(params ServiceParams) CredentialService {
	return &credentialService{ServiceParams: params}
}

func (s *credentialService) Summary(ctx context.Context, applicantID string) (*dto.CredentialSummaryResponse, error) {
	if applicantID == "" {
		return nil, ierr.NewError("missing applicant id").
			WithHint("An applicant id is required").
			Mark(ierr.ErrValidation)
	}

	records, err := s.AcademicRepo.List(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	key := cache.GenerateKey(cache.PrefixCredentialSummary, applicantID, recordsFingerprint(records))
	if cached, found := s.Cache.Get(ctx, key); found {
		if summary, ok := cached.(academic.CredentialSummary); ok {
			return dto.CredentialSummaryFromDomain(summary), nil
		}
	}

	summary := academic.RankCredentials(records)
	s.Cache.Set(ctx, key, summary, cache.DefaultExpiration)

	return dto.CredentialSummaryFromDomain(summary), nil
}

// recordsFingerprint identifies the record list's contents, so a changed
// list never serves a stale summary.
func recordsFingerprint(records []*academic.AcademicRecord) string {
	h := fnv.New64a()
	for _, r := range records {
		if r == nil {
			continue
		}
		fmt.Fprintf(h, "%d|%s|%s|%s|%s;",
			r.InstitutionNumber,
			deref(r.CredentialReceive),
			deref(r.ProgramStudy),
			formatDate(r.DateConfer),
			deref(r.GPA),
		)
	}
	return fmt.Sprintf("%x", h.Sum64())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
