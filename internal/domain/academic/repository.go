package academic

import "context"

// Repository reads an applicant's institution history from the external
// admissions system.
type Repository interface {
	List(ctx context.Context, applicantID string) ([]*AcademicRecord, error)
}
