package usecase

import (
	"context"
	"fmt"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// Overview recomputes the admin analytics from the stored submissions.
func (u *LedgerUseCase) Overview(ctx context.Context, actor domain.Actor) (*port.Overview, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := u.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	campaigns, err := u.repo.ListCampaigns(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	subs, err := u.repo.ListSubmissions(ctx, port.SubmissionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	top := domain.TopPerformers(subs, domain.DefaultTopPerformers)
	for i := range top {
		user, err := u.repo.GetUser(ctx, top[i].ClipperID)
		if err != nil {
			return nil, fmt.Errorf("load performer %s: %w", top[i].ClipperID, err)
		}
		if user != nil {
			top[i].Email = user.Email
		}
	}

	total := domain.TotalPayout(subs)
	pending := domain.PendingPayout(subs)
	return &port.Overview{
		TotalUsers:       users,
		TotalCampaigns:   int64(len(campaigns)),
		TotalSubmissions: int64(len(subs)),
		TotalPayout:      total,
		PendingPayout:    pending,
		PaidPayout:       total.Sub(pending),
		Platforms:        domain.PlatformDistribution(subs),
		TopPerformers:    top,
	}, nil
}

// ClipperStats summarises the calling clipper's earnings.
func (u *LedgerUseCase) ClipperStats(ctx context.Context, actor domain.Actor) (*domain.ClipperStats, error) {
	if err := requireRole(actor, domain.RoleClipper); err != nil {
		return nil, err
	}
	subs, err := u.repo.ListSubmissions(ctx, port.SubmissionFilter{ClipperID: actor.UserID})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	st := domain.SummarizeClipper(subs)
	return &st, nil
}
