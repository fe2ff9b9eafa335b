package service

import (
	"testing"
	"time"

	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type CredentialServiceSuite struct {
	testutil.BaseServiceTestSuite
	credentialService CredentialService
	academicRepo      *testutil.InMemoryAcademicStore
}

func TestCredentialService(t *testing.T) {
	suite.Run(t, new(CredentialServiceSuite))
}

func (s *CredentialServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.academicRepo = stores.AcademicRepo.(*testutil.InMemoryAcademicStore)

	s.credentialService = NewCredentialService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Store:        s.GetStore(),
		Gate:         s.GetGate(),
		Sync:         s.GetSync(),
		Cache:        s.GetCache(),
		ReviewRepo:   stores.ReviewRepo,
		AuditRepo:    stores.AuditRepo,
		AcademicRepo: stores.AcademicRepo,
		SessionRepo:  stores.SessionRepo,
	})
}

func (s *CredentialServiceSuite) seedRecord(applicantID, credential, program, gpa string, confer *time.Time) {
	s.academicRepo.Append(applicantID, &academic.AcademicRecord{
		CredentialReceive: lo.ToPtr(credential),
		ProgramStudy:      lo.ToPtr(program),
		GPA:               lo.ToPtr(gpa),
		DateConfer:        confer,
	})
}

func (s *CredentialServiceSuite) TestSummary() {
	confer := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.seedRecord("app-001", "Bachelor of Science", "Statistics", "3.7", &confer)
	s.seedRecord("app-001", "Master of Data Science", "Data Science", "3.9", nil)

	resp, err := s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	s.Require().NotNil(resp.HighestDegree)
	s.Equal("Master of Data Science", *resp.HighestDegree)
	s.Equal("Data Science", *resp.DegreeArea)
	s.Equal("3.9", *resp.GPA)
}

func (s *CredentialServiceSuite) TestSummaryNoRecords() {
	resp, err := s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	s.Nil(resp.HighestDegree)
	s.Nil(resp.DegreeArea)
	s.Nil(resp.GPA)
}

func (s *CredentialServiceSuite) TestSummaryMissingApplicantID() {
	_, err := s.credentialService.Summary(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CredentialServiceSuite) TestSummaryMemoized() {
	confer := time.Date(2020, time.May, 15, 0, 0, 0, 0, time.UTC)
	s.seedRecord("app-001", "PhD in Biology", "Biology", "4.0", &confer)

	first, err := s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	second, err := s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	s.Equal(first, second)
}

func (s *CredentialServiceSuite) TestSummaryNotStaleAfterRecordChange() {
	s.seedRecord("app-001", "Bachelor of Arts", "History", "3.2", nil)

	resp, err := s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	s.Require().NotNil(resp.HighestDegree)
	s.Equal("Bachelor of Arts", *resp.HighestDegree)

	// A changed institution list must not serve the memoized summary.
	s.seedRecord("app-001", "Master of Arts", "History", "3.6", nil)
	resp, err = s.credentialService.Summary(s.GetContext(), "app-001")
	s.NoError(err)
	s.Require().NotNil(resp.HighestDegree)
	s.Equal("Master of Arts", *resp.HighestDegree)
}
