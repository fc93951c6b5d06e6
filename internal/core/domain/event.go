package domain

import (
	"time"
)

// EventType names a ledger lifecycle event.
type EventType string

const (
	EventCampaignCreated       EventType = "campaign.created"
	EventCampaignStatusChanged EventType = "campaign.status_changed"
	EventSubmissionCreated     EventType = "submission.created"
	EventSubmissionApproved    EventType = "submission.approved"
	EventSubmissionRejected    EventType = "submission.rejected"
	EventSubmissionPaid        EventType = "submission.paid"
)

// Event is a record of a committed ledger change, emitted for downstream
// consumers.
type Event struct {
	ID              string    `json:"event_id"`
	Type            EventType `json:"event_type"`
	CampaignID      string    `json:"campaign_id"`
	SubmissionID    string    `json:"submission_id,omitempty"`
	ActorID         string    `json:"actor_id"`
	Status          string    `json:"status"`
	Amount          *Money    `json:"amount,omitempty"`
	RemainingBudget *Money    `json:"remaining_budget,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Key is the partitioning key: events of one campaign stay ordered.
func (e Event) Key() string {
	return e.CampaignID
}
