package audit

import "context"

// DefaultRecentLimit is how many history entries the review surface shows.
const DefaultRecentLimit = 5

// Repository reads status history from the external admissions system.
// Entries come back most-recent first.
type Repository interface {
	Recent(ctx context.Context, applicantID string, limit int) ([]*StatusChangeEvent, error)
}
