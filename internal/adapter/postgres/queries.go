package postgres

import (
	"fmt"
	"strings"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

const campaignColumns = `id, creator_id, title, description, video_url, reward_per_1000, budget, remaining_budget, status, created_at, updated_at`

const submissionColumns = `s.id, s.campaign_id, s.clipper_id, s.platform, s.video_link, s.view_count, s.screenshot_ref,
    s.payout_amount, s.status, s.is_paid, COALESCE(s.reviewed_by, ''), s.reviewed_at, s.paid_at, s.created_at, s.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.CreatorID, &c.Title, &c.Description, &c.VideoURL, &c.RewardPer1000, &c.Budget,
		&c.RemainingBudget, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanSubmission(row rowScanner) (domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.CampaignID, &s.ClipperID, &s.Platform, &s.VideoLink, &s.ViewCount, &s.ScreenshotRef,
		&s.PayoutAmount, &s.Status, &s.IsPaid, &s.ReviewedBy, &s.ReviewedAt, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func campaignListQuery(f port.CampaignFilter) (string, []any) {
	var w where
	if f.CreatorID != "" {
		w.add("creator_id = $%d", f.CreatorID)
	}
	if f.Status != "" {
		w.add("status = $%d", string(f.Status))
	}
	return `SELECT ` + campaignColumns + ` FROM campaigns` + w.String() + ` ORDER BY created_at DESC, id DESC`, w.args
}

func submissionListQuery(f port.SubmissionFilter) (string, []any) {
	var w where
	if f.CampaignID != "" {
		w.add("s.campaign_id = $%d", f.CampaignID)
	}
	if f.ClipperID != "" {
		w.add("s.clipper_id = $%d", f.ClipperID)
	}
	if f.CreatorID != "" {
		w.add("c.creator_id = $%d", f.CreatorID)
	}
	if f.Status != "" {
		w.add("s.status = $%d", string(f.Status))
	}
	from := ` FROM submissions s`
	if f.CreatorID != "" {
		from += ` JOIN campaigns c ON c.id = s.campaign_id`
	}
	return `SELECT ` + submissionColumns + from + w.String() + ` ORDER BY s.seq`, w.args
}
