package academic

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(credential, program, gpa string, confer *time.Time) *AcademicRecord {
	return &AcademicRecord{
		CredentialReceive: lo.ToPtr(credential),
		ProgramStudy:      lo.ToPtr(program),
		GPA:               lo.ToPtr(gpa),
		DateConfer:        confer,
	}
}

func dateOf(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestRankCredentials_HigherLevelWins(t *testing.T) {
	records := []*AcademicRecord{
		record("Bachelor of Science", "Biology", "3.9", dateOf(2024, time.June, 1)),
		record("Master of Science", "Statistics", "3.5", dateOf(2020, time.June, 1)),
	}

	summary := RankCredentials(records)
	require.NotNil(t, summary.HighestDegree)
	assert.Equal(t, "Master of Science", *summary.HighestDegree)
	assert.Equal(t, "Statistics", *summary.DegreeArea)
	assert.Equal(t, "3.5", *summary.GPA)
}

func TestRankCredentials_LaterDateWinsEqualLevel(t *testing.T) {
	older := record("MSc Computer Science", "Computer Science", "3.2", dateOf(2018, time.May, 15))
	newer := record("Master of Data Science", "Data Science", "3.8", dateOf(2022, time.May, 15))

	// Outcome does not depend on scan order when both records are dated.
	for _, records := range [][]*AcademicRecord{
		{older, newer},
		{newer, older},
	} {
		summary := RankCredentials(records)
		require.NotNil(t, summary.HighestDegree)
		assert.Equal(t, "Master of Data Science", *summary.HighestDegree)
	}
}

func TestRankCredentials_DatedBeatsUndated(t *testing.T) {
	undated := record("Bachelor of Arts", "History", "3.1", nil)
	dated := record("Bachelor of Science", "Physics", "3.4", dateOf(2015, time.June, 1))

	for _, records := range [][]*AcademicRecord{
		{undated, dated},
		{dated, undated},
	} {
		summary := RankCredentials(records)
		require.NotNil(t, summary.HighestDegree)
		assert.Equal(t, "Bachelor of Science", *summary.HighestDegree)
	}
}

func TestRankCredentials_BothUndatedKeepsFirstSeen(t *testing.T) {
	first := record("Bachelor of Commerce", "Commerce", "3.0", nil)
	second := record("Bachelor of Engineering", "Engineering", "3.6", nil)

	summary := RankCredentials([]*AcademicRecord{first, second})
	require.NotNil(t, summary.HighestDegree)
	assert.Equal(t, "Bachelor of Commerce", *summary.HighestDegree)
}

func TestRankCredentials_Deterministic(t *testing.T) {
	records := []*AcademicRecord{
		record("PhD in Mathematics", "Mathematics", "4.0", dateOf(2023, time.January, 10)),
		record("Master of Science", "Statistics", "3.7", dateOf(2019, time.June, 1)),
		record("Diploma in Computing", "Computing", "3.3", nil),
	}

	expected := RankCredentials(records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, expected, RankCredentials(records))
	}
	require.NotNil(t, expected.HighestDegree)
	assert.Equal(t, "PhD in Mathematics", *expected.HighestDegree)
}

func TestRankCredentials_EmptyAndNullInputs(t *testing.T) {
	assert.Equal(t, CredentialSummary{}, RankCredentials(nil))
	assert.Equal(t, CredentialSummary{}, RankCredentials([]*AcademicRecord{}))

	// Records with no usable credential text degrade to the all-nil summary.
	records := []*AcademicRecord{
		nil,
		{CredentialReceive: nil},
		record("", "Undeclared", "2.9", dateOf(2020, time.June, 1)),
		record("Exchange program", "Linguistics", "3.5", dateOf(2021, time.June, 1)),
	}
	assert.Equal(t, CredentialSummary{}, RankCredentials(records))
}

func TestRankCredentials_CaseInsensitiveMatch(t *testing.T) {
	records := []*AcademicRecord{
		record("BACHELOR OF SCIENCE", "Chemistry", "3.2", nil),
		record("master of science", "Chemistry", "3.8", nil),
	}

	summary := RankCredentials(records)
	require.NotNil(t, summary.HighestDegree)
	assert.Equal(t, "master of science", *summary.HighestDegree)
}

func TestCredentialLevel_HighestMatchWins(t *testing.T) {
	tests := []struct {
		credential string
		level      int
	}{
		{"Doctor of Philosophy", levelDoctoral},
		{"Ph.D. in Statistics", levelDoctoral},
		{"Master of Business Administration (MBA)", levelMaster},
		{"M.Eng", levelMaster},
		{"Baccalaureate degree", levelBachelor},
		{"B.Sc (Hons)", levelBachelor},
		{"Associate of Arts", levelAssociate},
		{"Graduate Certificate", levelAssociate},
		// A phrase matching multiple tiers resolves to the highest.
		{"Bachelor's followed by Master's", levelMaster},
		{"High school transcript", levelNone},
		{"", levelNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.level, credentialLevel(tc.credential), "credential: %q", tc.credential)
	}
}
