package academic

import "time"

// AcademicRecord is one entry in an applicant's institution history, read
// from the external admissions system. The collection is read-only input to
// credential ranking and is never mutated by this layer.
type AcademicRecord struct {
	InstitutionNumber int        `json:"institution_number"`
	CredentialReceive *string    `json:"credential_receive"`
	ProgramStudy      *string    `json:"program_study"`
	DateConfer        *time.Time `json:"date_confer"`
	GPA               *string    `json:"gpa"`
}

// CredentialSummary is the derived best-credential summary shown on the
// read-only summary panel. It has no independent lifecycle: it is recomputed
// from the institution list on every load. All fields are nil when no record
// carries a recognizable credential.
type CredentialSummary struct {
	HighestDegree *string `json:"highest_degree"`
	DegreeArea    *string `json:"degree_area"`
	GPA           *string `json:"gpa"`
}
