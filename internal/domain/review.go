package domain

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusFlagged  ReviewStatus = "flagged"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusFlagged:
		return true
	}
	return false
}

type Review struct {
	ID             string       `json:"id"`
	BookingID      string       `json:"booking_id"`
	UserID         string       `json:"user_id"`
	ServiceID      string       `json:"service_id"`
	Rating         int          `json:"rating"`
	Comment        string       `json:"comment"`
	Status         ReviewStatus `json:"status"`
	ModerationNote *string      `json:"moderation_note"`
	ModeratedBy    *string      `json:"moderated_by"`
	ModeratedAt    *time.Time   `json:"moderated_at"`
	AdminResponse  *string      `json:"admin_response"`
	RespondedBy    *string      `json:"responded_by"`
	RespondedAt    *time.Time   `json:"responded_at"`
	ReportCount    int          `json:"report_count"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
}

type ModerateReviewInput struct {
	ReviewID string
	Status   ReviewStatus
	Note     string
}

type ReportReviewInput struct {
	ReviewID string
	Reason   string
}

type RespondReviewInput struct {
	ReviewID string
	Message  string
}

// ReviewFilter: пустые поля не фильтруют.
type ReviewFilter struct {
	UserID    string
	ServiceID string
	Status    ReviewStatus
	Rating    int
	Limit     int
}

type ReviewStats struct {
	Total         int64                  `json:"total"`
	AverageRating float64                `json:"average_rating"`
	ByStatus      map[ReviewStatus]int64 `json:"by_status"`
	ByRating      map[int]int64          `json:"by_rating"`
	Recent        int64                  `json:"recent"`
}
