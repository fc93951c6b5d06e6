package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewedAt = time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

func newTestSubmission(t *testing.T, c Campaign, views int64) Submission {
	t.Helper()
	s, err := NewSubmission(c, SubmitParams{
		ID:            "s1",
		ClipperID:     "clipper",
		Platform:      "Instagram",
		VideoLink:     " https://instagram.example/reel/1 ",
		ViewCount:     views,
		ScreenshotRef: "screenshots/s1.png",
	})
	require.NoError(t, err)
	return s
}

func TestNewSubmission(t *testing.T) {
	c := newTestCampaign(t, 100000, 1000)

	s := newTestSubmission(t, c, 50000)
	assert.Equal(t, SubmissionPending, s.Status)
	assert.False(t, s.IsPaid)
	assert.Equal(t, PlatformInstagram, s.Platform)
	assert.Equal(t, "https://instagram.example/reel/1", s.VideoLink)
	assert.Equal(t, "screenshots/s1.png", s.ScreenshotRef)
	assert.Equal(t, "500.00", s.PayoutAmount.String())

	// Payout may exceed the remaining budget; it is only checked on approval.
	big := newTestSubmission(t, c, 500000)
	assert.Equal(t, "5000.00", big.PayoutAmount.String())
}

func TestNewSubmissionValidation(t *testing.T) {
	active := newTestCampaign(t, 100000, 1000)
	paused := active
	paused.Status = CampaignPaused

	valid := SubmitParams{ID: "s", ClipperID: "c", Platform: "tiktok", VideoLink: "l", ViewCount: 1}

	tests := []struct {
		name     string
		campaign Campaign
		mutate   func(*SubmitParams)
		want     error
	}{
		{name: "paused campaign", campaign: paused, mutate: func(*SubmitParams) {}, want: ErrCampaignInactive},
		{name: "negative views", campaign: active, mutate: func(p *SubmitParams) { p.ViewCount = -5 }, want: ErrInvalidViewCount},
		{name: "empty link", campaign: active, mutate: func(p *SubmitParams) { p.VideoLink = "  " }, want: ErrInvalidInput},
		{name: "unknown platform", campaign: active, mutate: func(p *SubmitParams) { p.Platform = "myspace" }, want: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := NewSubmission(tt.campaign, p)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApproveDebitsAtomically(t *testing.T) {
	c := newTestCampaign(t, 100000, 1000)
	first := newTestSubmission(t, c, 50000)
	second := newTestSubmission(t, c, 80000)

	require.NoError(t, first.Approve(&c, "admin", reviewedAt))
	assert.Equal(t, SubmissionApproved, first.Status)
	assert.Equal(t, "admin", first.ReviewedBy)
	assert.Equal(t, reviewedAt, *first.ReviewedAt)
	assert.Equal(t, "500.00", c.RemainingBudget.String())

	err := second.Approve(&c, "admin", reviewedAt)
	require.ErrorIs(t, err, ErrInsufficientBudget)
	assert.Equal(t, SubmissionPending, second.Status)
	assert.Nil(t, second.ReviewedAt)
	assert.Equal(t, "500.00", c.RemainingBudget.String())

	require.ErrorIs(t, first.Approve(&c, "admin", reviewedAt), ErrInvalidTransition)
	assert.Equal(t, "500.00", c.RemainingBudget.String())
}

func TestApproveRejectsForeignCampaign(t *testing.T) {
	c := newTestCampaign(t, 100000, 1000)
	s := newTestSubmission(t, c, 1000)
	other := c
	other.ID = "c2"

	require.ErrorIs(t, s.Approve(&other, "admin", reviewedAt), ErrInvalidInput)
	assert.Equal(t, c.Budget, other.RemainingBudget)
}

func TestRejectAndMarkPaid(t *testing.T) {
	c := newTestCampaign(t, 100000, 1000)

	rejected := newTestSubmission(t, c, 1000)
	require.NoError(t, rejected.Reject("admin", reviewedAt))
	assert.Equal(t, SubmissionRejected, rejected.Status)
	require.ErrorIs(t, rejected.Reject("admin", reviewedAt), ErrInvalidTransition)
	require.ErrorIs(t, rejected.Approve(&c, "admin", reviewedAt), ErrInvalidTransition)
	require.ErrorIs(t, rejected.MarkPaid(reviewedAt), ErrInvalidTransition)
	assert.Equal(t, c.Budget, c.RemainingBudget)

	pending := newTestSubmission(t, c, 1000)
	require.ErrorIs(t, pending.MarkPaid(reviewedAt), ErrInvalidTransition)
	assert.False(t, pending.IsPaid)

	require.NoError(t, pending.Approve(&c, "admin", reviewedAt))
	require.NoError(t, pending.MarkPaid(reviewedAt))
	assert.True(t, pending.IsPaid)
	assert.Equal(t, reviewedAt, *pending.PaidAt)
	require.ErrorIs(t, pending.MarkPaid(reviewedAt), ErrInvalidTransition)
	require.ErrorIs(t, pending.Reject("admin", reviewedAt), ErrInvalidTransition)
}
