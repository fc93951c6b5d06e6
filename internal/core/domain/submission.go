package domain

import (
	"fmt"
	"strings"
	"time"
)

// SubmissionStatus is the approval dimension of a submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// ParseSubmissionStatus validates a textual status.
func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	switch st := SubmissionStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown submission status %q", ErrInvalidInput, s)
	}
}

// Platform is where a clipper re-posted the campaign video.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformOther     Platform = "other"
)

// ParsePlatform normalises and validates a platform name.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformTwitter, PlatformFacebook, PlatformOther:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, s)
	}
}

// Submission is one clipper's claim against a campaign. PayoutAmount is
// frozen when the submission is created. IsPaid can only be true for an
// approved submission.
type Submission struct {
	ID            string
	CampaignID    string
	ClipperID     string
	Platform      Platform
	VideoLink     string
	ViewCount     int64
	ScreenshotRef string
	PayoutAmount  Money
	Status        SubmissionStatus
	IsPaid        bool
	ReviewedBy    string
	ReviewedAt    *time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubmitParams carries a clipper's claim.
type SubmitParams struct {
	ID            string
	ClipperID     string
	Platform      string
	VideoLink     string
	ViewCount     int64
	ScreenshotRef string
	CreatedAt     time.Time
}

// NewSubmission creates a pending submission against campaign, locking in
// the payout at the campaign's current rate.
func NewSubmission(campaign Campaign, p SubmitParams) (Submission, error) {
	if !campaign.IsActive() {
		return Submission{}, fmt.Errorf("%w: campaign %s is %s", ErrCampaignInactive, campaign.ID, campaign.Status)
	}
	if p.ViewCount < 0 {
		return Submission{}, fmt.Errorf("%w: %d", ErrInvalidViewCount, p.ViewCount)
	}
	link := strings.TrimSpace(p.VideoLink)
	if link == "" {
		return Submission{}, fmt.Errorf("%w: video link is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.ClipperID) == "" {
		return Submission{}, fmt.Errorf("%w: submission id and clipper are required", ErrInvalidInput)
	}
	platform, err := ParsePlatform(p.Platform)
	if err != nil {
		return Submission{}, err
	}
	payout, err := ComputePayout(p.ViewCount, campaign.RewardPer1000)
	if err != nil {
		return Submission{}, err
	}
	return Submission{
		ID:            p.ID,
		CampaignID:    campaign.ID,
		ClipperID:     p.ClipperID,
		Platform:      platform,
		VideoLink:     link,
		ViewCount:     p.ViewCount,
		ScreenshotRef: strings.TrimSpace(p.ScreenshotRef),
		PayoutAmount:  payout,
		Status:        SubmissionPending,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.CreatedAt,
	}, nil
}

// Approve moves a pending submission to approved and debits its payout from
// campaign. Debit and transition happen together: on any error neither the
// submission nor the campaign is modified.
func (s *Submission) Approve(campaign *Campaign, reviewer string, at time.Time) error {
	if s.Status != SubmissionPending {
		return fmt.Errorf("%w: cannot approve %s submission", ErrInvalidTransition, s.Status)
	}
	if campaign == nil || campaign.ID != s.CampaignID {
		return fmt.Errorf("%w: submission %s does not belong to the given campaign", ErrInvalidInput, s.ID)
	}
	if err := campaign.Debit(s.PayoutAmount); err != nil {
		return err
	}
	campaign.UpdatedAt = at
	s.Status = SubmissionApproved
	s.markReviewed(reviewer, at)
	return nil
}

// Reject moves a pending submission to rejected. No budget is involved.
func (s *Submission) Reject(reviewer string, at time.Time) error {
	if s.Status != SubmissionPending {
		return fmt.Errorf("%w: cannot reject %s submission", ErrInvalidTransition, s.Status)
	}
	s.Status = SubmissionRejected
	s.markReviewed(reviewer, at)
	return nil
}

// MarkPaid records that an approved submission's payout was sent. There is
// no way back.
func (s *Submission) MarkPaid(at time.Time) error {
	if s.Status != SubmissionApproved {
		return fmt.Errorf("%w: cannot pay %s submission", ErrInvalidTransition, s.Status)
	}
	if s.IsPaid {
		return fmt.Errorf("%w: submission %s is already paid", ErrInvalidTransition, s.ID)
	}
	s.IsPaid = true
	s.PaidAt = &at
	s.UpdatedAt = at
	return nil
}

func (s *Submission) markReviewed(reviewer string, at time.Time) {
	s.ReviewedBy = reviewer
	s.ReviewedAt = &at
	s.UpdatedAt = at
}
