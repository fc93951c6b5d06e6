package port

import (
	"context"

	"clip-market/internal/core/domain"
)

// LedgerRepository defines the persistence layer for campaigns, submissions
// and the users the ledger authorises against. It is an outbound port.
// Implementations must be concurrency-safe: UpdateCampaign and
// ReviewSubmission serialise on the campaign, so concurrent approvals on one
// campaign observe each other's debits while different campaigns never
// contend.
type LedgerRepository interface {
	// CreateUser stores a user profile.
	CreateUser(ctx context.Context, user domain.User) error
	// GetUser returns a user by id, or nil when it does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// CountUsers returns the number of known users.
	CountUsers(ctx context.Context) (int64, error)

	// CreateCampaign stores a new campaign.
	CreateCampaign(ctx context.Context, campaign domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching filter, newest first.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// UpdateCampaign loads the campaign under its lock, applies mutate and
	// persists the result. Nothing is written when mutate fails.
	// domain.ErrCampaignNotFound is returned for an unknown id.
	UpdateCampaign(ctx context.Context, id string, mutate CampaignMutation) (*domain.Campaign, error)

	// CreateSubmission stores a new submission.
	CreateSubmission(ctx context.Context, submission domain.Submission) error
	// GetSubmission returns a submission by id, or nil when it does not exist.
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
	// ListSubmissions returns submissions matching filter in creation order.
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, error)
	// ReviewSubmission locks the submission's campaign, applies review to
	// both and persists them together. Nothing is written when review
	// fails. domain.ErrSubmissionNotFound is returned for an unknown id.
	ReviewSubmission(ctx context.Context, id string, review ReviewFunc) (*ReviewResult, error)
}

// CampaignMutation changes a campaign in place.
type CampaignMutation func(campaign *domain.Campaign) error

// ReviewFunc changes a submission and, possibly, its campaign in place.
type ReviewFunc func(campaign *domain.Campaign, submission *domain.Submission) error

// ReviewResult is the committed state after a review.
type ReviewResult struct {
	Campaign   domain.Campaign
	Submission domain.Submission
}

// CampaignFilter narrows ListCampaigns. Zero fields match everything.
type CampaignFilter struct {
	CreatorID string
	Status    domain.CampaignStatus
}

// SubmissionFilter narrows ListSubmissions. Zero fields match everything.
// CreatorID selects submissions made on campaigns owned by that creator.
type SubmissionFilter struct {
	CampaignID string
	ClipperID  string
	CreatorID  string
	Status     domain.SubmissionStatus
}
