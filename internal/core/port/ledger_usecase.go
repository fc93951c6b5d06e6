package port

import (
	"context"

	"clip-market/internal/core/domain"
)

// LedgerUseCase defines the business operations of the payout ledger. This
// interface is the primary port into the application domain. Every call
// takes the actor resolved by Authenticate; role checks happen behind this
// port, never in the caller.
type LedgerUseCase interface {
	// Authenticate resolves a user id supplied by the identity provider into
	// an actor, loading the role from storage.
	Authenticate(ctx context.Context, userID string) (domain.Actor, error)

	// CreateCampaign opens a new active campaign owned by the calling
	// creator.
	CreateCampaign(ctx context.Context, actor domain.Actor, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a single campaign.
	GetCampaign(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	// ListCampaigns lists campaigns. Clippers only see active campaigns.
	ListCampaigns(ctx context.Context, actor domain.Actor, filter CampaignFilter) ([]domain.Campaign, error)
	// SetCampaignStatus toggles a campaign between active and paused. Only
	// the owning creator or an admin may do so.
	SetCampaignStatus(ctx context.Context, actor domain.Actor, id string, status domain.CampaignStatus) (*domain.Campaign, error)
	// CampaignStats summarises a campaign's submissions and spend.
	CampaignStats(ctx context.Context, actor domain.Actor, id string) (*domain.CampaignStats, error)

	// Submit records a clipper's claim against an active campaign.
	Submit(ctx context.Context, actor domain.Actor, req SubmitReq) (*domain.Submission, error)
	// GetSubmission returns a single submission visible to actor.
	GetSubmission(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error)
	// ListSubmissions lists the submissions visible to actor.
	ListSubmissions(ctx context.Context, actor domain.Actor, filter SubmissionFilter) ([]domain.Submission, error)

	// Approve approves a pending submission and debits its payout from the
	// campaign budget in one step. Admin only.
	Approve(ctx context.Context, actor domain.Actor, id string) (*ReviewResult, error)
	// Reject rejects a pending submission. Admin only.
	Reject(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error)
	// MarkPaid records the payout of an approved submission. Admin only.
	MarkPaid(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error)

	// Overview returns platform-wide payout analytics. Admin only.
	Overview(ctx context.Context, actor domain.Actor) (*Overview, error)
	// ClipperStats returns the calling clipper's earnings summary.
	ClipperStats(ctx context.Context, actor domain.Actor) (*domain.ClipperStats, error)
}

// CreateCampaignReq is the creator input for a new campaign.
type CreateCampaignReq struct {
	Title         string
	Description   string
	VideoURL      string
	RewardPer1000 domain.Money
	Budget        domain.Money
}

// SubmitReq is the clipper input for a new submission.
type SubmitReq struct {
	CampaignID    string
	Platform      string
	VideoLink     string
	ViewCount     int64
	ScreenshotRef string
}

// Overview contains the admin analytics, recomputed from stored
// submissions on every call.
type Overview struct {
	TotalUsers       int64
	TotalCampaigns   int64
	TotalSubmissions int64
	TotalPayout      domain.Money
	PendingPayout    domain.Money
	PaidPayout       domain.Money
	Platforms        []domain.PlatformCount
	TopPerformers    []domain.Performer
}
