package domain

import (
	"fmt"
	"strings"
	"time"
)

// CampaignStatus is either active or paused.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
)

// ParseCampaignStatus validates a textual status.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch st := CampaignStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case CampaignActive, CampaignPaused:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown campaign status %q", ErrInvalidInput, s)
	}
}

// Campaign is a creator's offer of a reward per 1000 views.
// Budget is fixed at creation; RemainingBudget only ever moves through Debit
// and always stays within [0, Budget].
type Campaign struct {
	ID              string
	CreatorID       string
	Title           string
	Description     string
	VideoURL        string
	RewardPer1000   Money
	Budget          Money
	RemainingBudget Money
	Status          CampaignStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCampaignParams carries creator input for a new campaign.
type NewCampaignParams struct {
	ID            string
	CreatorID     string
	Title         string
	Description   string
	VideoURL      string
	RewardPer1000 Money
	Budget        Money
	CreatedAt     time.Time
}

// NewCampaign validates p and returns an active campaign whose remaining
// budget equals its budget.
func NewCampaign(p NewCampaignParams) (Campaign, error) {
	if p.Budget.IsNegative() {
		return Campaign{}, fmt.Errorf("%w: budget %s is negative", ErrInvalidAmount, p.Budget)
	}
	if p.RewardPer1000.Cmp(Zero) <= 0 {
		return Campaign{}, fmt.Errorf("%w: reward per 1000 views must be positive", ErrInvalidAmount)
	}
	title := strings.TrimSpace(p.Title)
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.CreatorID) == "" || title == "" {
		return Campaign{}, fmt.Errorf("%w: campaign id, creator and title are required", ErrInvalidInput)
	}
	return Campaign{
		ID:              p.ID,
		CreatorID:       p.CreatorID,
		Title:           title,
		Description:     strings.TrimSpace(p.Description),
		VideoURL:        strings.TrimSpace(p.VideoURL),
		RewardPer1000:   p.RewardPer1000,
		Budget:          p.Budget,
		RemainingBudget: p.Budget,
		Status:          CampaignActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.CreatedAt,
	}, nil
}

// Debit removes amount from the remaining budget. It fails with
// ErrInsufficientBudget, leaving the campaign untouched, when amount exceeds
// what is left.
func (c *Campaign) Debit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: debit of %s", ErrInvalidAmount, amount)
	}
	if amount.Cmp(c.RemainingBudget) > 0 {
		return fmt.Errorf("%w: need %s, %s remaining", ErrInsufficientBudget, amount, c.RemainingBudget)
	}
	c.RemainingBudget = c.RemainingBudget.Sub(amount)
	return nil
}

// SetStatus switches between active and paused. The budget is not touched.
func (c *Campaign) SetStatus(status CampaignStatus) error {
	if status != CampaignActive && status != CampaignPaused {
		return fmt.Errorf("%w: unknown campaign status %q", ErrInvalidInput, status)
	}
	c.Status = status
	return nil
}

func (c Campaign) IsActive() bool { return c.Status == CampaignActive }

// Spent is the part of the budget already debited by approvals.
func (c Campaign) Spent() Money {
	return c.Budget.Sub(c.RemainingBudget)
}
