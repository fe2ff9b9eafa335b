package audit

import (
	"time"

	"github.com/marga120/mds-application-sub000/internal/types"
)

// StatusChangeEvent is one immutable entry in an applicant's status history.
// Events are created by the external admissions system once per successful
// status write; this layer only ever reads them back.
type StatusChangeEvent struct {
	ApplicantID string             `json:"applicant_id"`
	ActorName   string             `json:"actor_name"`
	OldValue    types.ReviewStatus `json:"old_value"`
	NewValue    types.ReviewStatus `json:"new_value"`
	CreatedAt   time.Time          `json:"created_at"`
}
