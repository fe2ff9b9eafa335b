package types

import ierr "github.com/marga120/mds-application-sub000/internal/errors"

// ScholarshipDecision is the closed set of scholarship outcomes.
type ScholarshipDecision string

const (
	ScholarshipYes       ScholarshipDecision = "Yes"
	ScholarshipNo        ScholarshipDecision = "No"
	ScholarshipUndecided ScholarshipDecision = "Undecided"
)

func (d ScholarshipDecision) Validate() error {
	switch d {
	case ScholarshipYes, ScholarshipNo, ScholarshipUndecided:
		return nil
	}
	return ierr.NewError("invalid scholarship decision").
		WithHintf("Scholarship decision %q must be Yes, No or Undecided", d).
		WithReportableDetails(map[string]any{
			"decision": d,
		}).
		Mark(ierr.ErrValidation)
}

// EnglishTest identifies the proficiency test backing an English-status update.
type EnglishTest string

const (
	EnglishTestIELTS    EnglishTest = "ielts"
	EnglishTestTOEFL    EnglishTest = "toefl"
	EnglishTestDuolingo EnglishTest = "duolingo"
)

func (t EnglishTest) Validate() error {
	switch t {
	case EnglishTestIELTS, EnglishTestTOEFL, EnglishTestDuolingo:
		return nil
	}
	return ierr.NewError("invalid english test").
		WithHintf("English test %q is not supported", t).
		WithReportableDetails(map[string]any{
			"test": t,
		}).
		Mark(ierr.ErrValidation)
}
