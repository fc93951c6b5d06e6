package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// CreateCampaign opens a new active campaign owned by the calling creator.
// The remaining budget starts equal to the budget.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, actor domain.Actor, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleCreator); err != nil {
		return nil, err
	}
	c, err := domain.NewCampaign(domain.NewCampaignParams{
		ID:            u.newID(),
		CreatorID:     actor.UserID,
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		RewardPer1000: req.RewardPer1000,
		Budget:        req.Budget,
		CreatedAt:     u.now(),
	})
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	u.metrics.RecordCampaignCreated()
	ev := u.event(domain.EventCampaignCreated, actor, c.ID)
	ev.Status = string(c.Status)
	ev.RemainingBudget = &c.RemainingBudget
	u.publish(ctx, ev)

	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("creator_id", c.CreatorID),
		slog.String("budget", c.Budget.String()),
	)
	return &c, nil
}

// GetCampaign returns a campaign by id.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleClipper, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return u.loadCampaign(ctx, id)
}

func (u *LedgerUseCase) loadCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", id, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	return c, nil
}

// ListCampaigns lists campaigns newest first. Clippers browse active
// campaigns only.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context, actor domain.Actor, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleClipper, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if actor.Is(domain.RoleClipper) {
		filter.Status = domain.CampaignActive
	}
	items, err := u.repo.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return items, nil
}

// SetCampaignStatus pauses or resumes a campaign. Creators may only touch
// their own campaigns; admins may touch any.
func (u *LedgerUseCase) SetCampaignStatus(ctx context.Context, actor domain.Actor, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleAdmin); err != nil {
		return nil, err
	}
	var changed bool
	c, err := u.repo.UpdateCampaign(ctx, strings.TrimSpace(id), func(c *domain.Campaign) error {
		changed = false
		if actor.Is(domain.RoleCreator) && c.CreatorID != actor.UserID {
			return fmt.Errorf("%w: campaign %s belongs to another creator", domain.ErrForbidden, c.ID)
		}
		prev := c.Status
		if err := c.SetStatus(status); err != nil {
			return err
		}
		if c.Status == prev {
			return nil
		}
		c.UpdatedAt = u.now()
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return c, nil
	}

	u.metrics.RecordCampaignStatus(c.Status)
	ev := u.event(domain.EventCampaignStatusChanged, actor, c.ID)
	ev.Status = string(c.Status)
	u.publish(ctx, ev)

	u.logger.Info("campaign status changed",
		slog.String("campaign_id", c.ID),
		slog.String("status", string(c.Status)),
		slog.String("actor_id", actor.UserID),
	)
	return c, nil
}

// CampaignStats summarises the submissions a campaign received.
func (u *LedgerUseCase) CampaignStats(ctx context.Context, actor domain.Actor, id string) (*domain.CampaignStats, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleAdmin); err != nil {
		return nil, err
	}
	c, err := u.loadCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Is(domain.RoleCreator) && c.CreatorID != actor.UserID {
		return nil, fmt.Errorf("%w: campaign %s belongs to another creator", domain.ErrForbidden, c.ID)
	}
	subs, err := u.repo.ListSubmissions(ctx, port.SubmissionFilter{CampaignID: c.ID})
	if err != nil {
		return nil, fmt.Errorf("list submissions of campaign %s: %w", c.ID, err)
	}
	st := domain.SummarizeCampaign(*c, subs)
	return &st, nil
}
