package dto

import "github.com/marga120/mds-application-sub000/internal/domain/academic"

// CredentialSummaryResponse is the read-only best-credential panel. All
// fields are null when no record carries a recognizable credential.
type CredentialSummaryResponse struct {
	HighestDegree *string `json:"highest_degree"`
	DegreeArea    *string `json:"degree_area"`
	GPA           *string `json:"gpa"`
}

func CredentialSummaryFromDomain(summary academic.CredentialSummary) *CredentialSummaryResponse {
	return &CredentialSummaryResponse{
		HighestDegree: summary.HighestDegree,
		DegreeArea:    summary.DegreeArea,
		GPA:           summary.GPA,
	}
}
