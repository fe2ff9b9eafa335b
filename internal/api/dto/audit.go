package dto

import (
	"time"

	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/samber/lo"
)

// HistoryNotAvailable is shown in place of the audit trail to roles without
// history visibility, so no capability error leaks to them.
const HistoryNotAvailable = "Status history is not available to your role"

type StatusChangeEventResponse struct {
	ApplicantID string             `json:"applicant_id"`
	ActorName   string             `json:"actor_name"`
	OldValue    types.ReviewStatus `json:"old_value"`
	NewValue    types.ReviewStatus `json:"new_value"`
	CreatedAt   time.Time          `json:"created_at"`
}

// HistoryResponse is the recent status history for one applicant,
// most-recent first. Available is false when the acting role may not see
// history; Placeholder then carries the static message and Entries is empty.
type HistoryResponse struct {
	Available   bool                         `json:"available"`
	Placeholder string                       `json:"placeholder,omitempty"`
	Entries     []*StatusChangeEventResponse `json:"entries,omitempty"`
}

func HistoryFromEvents(events []*audit.StatusChangeEvent) *HistoryResponse {
	return &HistoryResponse{
		Available: true,
		Entries: lo.Map(events, func(e *audit.StatusChangeEvent, _ int) *StatusChangeEventResponse {
			return &StatusChangeEventResponse{
				ApplicantID: e.ApplicantID,
				ActorName:   e.ActorName,
				OldValue:    e.OldValue,
				NewValue:    e.NewValue,
				CreatedAt:   e.CreatedAt,
			}
		}),
	}
}

func HistoryPlaceholder() *HistoryResponse {
	return &HistoryResponse{
		Available:   false,
		Placeholder: HistoryNotAvailable,
	}
}
