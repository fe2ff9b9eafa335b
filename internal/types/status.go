package types

import ierr "github.com/marga120/mds-application-sub000/internal/errors"

// ReviewStatus is the closed-set label describing where an applicant sits in
// the human review pipeline. The set is unordered: any status may transition
// to any other status and no status is terminal.
type ReviewStatus string

const (
	StatusNotReviewed      ReviewStatus = "Not Reviewed"
	StatusReviewedByPPA    ReviewStatus = "Reviewed by PPA"
	StatusNeedJeffReview   ReviewStatus = "Need Jeff's Review"
	StatusNeedKhaladReview ReviewStatus = "Need Khalad's Review"
	StatusWaitlist         ReviewStatus = "Waitlist"
	StatusDeclined         ReviewStatus = "Declined"
	StatusSendOfferToCoGS  ReviewStatus = "Send Offer to CoGS"
	StatusOfferSentToCoGS  ReviewStatus = "Offer Sent to CoGS"
	StatusOfferSentToStudent ReviewStatus = "Offer Sent to Student"
	StatusOfferAccepted    ReviewStatus = "Offer Accepted"
	StatusOfferDeclined    ReviewStatus = "Offer Declined"
)

// AllReviewStatuses returns the statuses in the order they are presented to
// operators. The order carries no semantic meaning.
func AllReviewStatuses() []ReviewStatus {
	return []ReviewStatus{
		StatusNotReviewed,
		StatusReviewedByPPA,
		StatusNeedJeffReview,
		StatusNeedKhaladReview,
		StatusWaitlist,
		StatusDeclined,
		StatusSendOfferToCoGS,
		StatusOfferSentToCoGS,
		StatusOfferSentToStudent,
		StatusOfferAccepted,
		StatusOfferDeclined,
	}
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) Validate() error {
	for _, valid := range AllReviewStatuses() {
		if s == valid {
			return nil
		}
	}
	return ierr.NewError("invalid review status").
		WithHintf("Status %q is not a recognized review status", s).
		WithReportableDetails(map[string]any{
			"status": s,
		}).
		Mark(ierr.ErrValidation)
}
