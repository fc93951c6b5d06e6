package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// Submit records a clipper's claim. The payout is computed from the
// campaign's rate at this moment and never recomputed.
func (u *LedgerUseCase) Submit(ctx context.Context, actor domain.Actor, req port.SubmitReq) (*domain.Submission, error) {
	if err := requireRole(actor, domain.RoleClipper); err != nil {
		return nil, err
	}
	c, err := u.loadCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	s, err := domain.NewSubmission(*c, domain.SubmitParams{
		ID:            u.newID(),
		ClipperID:     actor.UserID,
		Platform:      req.Platform,
		VideoLink:     req.VideoLink,
		ViewCount:     req.ViewCount,
		ScreenshotRef: req.ScreenshotRef,
		CreatedAt:     u.now(),
	})
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateSubmission(ctx, s); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	u.metrics.RecordSubmission(s.Platform)
	ev := u.submissionEvent(domain.EventSubmissionCreated, actor, s)
	u.publish(ctx, ev)

	u.logger.Info("submission created",
		slog.String("submission_id", s.ID),
		slog.String("campaign_id", s.CampaignID),
		slog.String("clipper_id", s.ClipperID),
		slog.String("payout", s.PayoutAmount.String()),
	)
	return &s, nil
}

// GetSubmission returns a submission visible to actor: admins see all,
// clippers their own, creators those made on their campaigns.
func (u *LedgerUseCase) GetSubmission(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleClipper, domain.RoleAdmin); err != nil {
		return nil, err
	}
	s, err := u.repo.GetSubmission(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("load submission %s: %w", id, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionNotFound, id)
	}
	switch actor.Role {
	case domain.RoleClipper:
		if s.ClipperID != actor.UserID {
			return nil, fmt.Errorf("%w: submission %s belongs to another clipper", domain.ErrForbidden, s.ID)
		}
	case domain.RoleCreator:
		c, err := u.loadCampaign(ctx, s.CampaignID)
		if err != nil {
			return nil, err
		}
		if c.CreatorID != actor.UserID {
			return nil, fmt.Errorf("%w: submission %s is on another creator's campaign", domain.ErrForbidden, s.ID)
		}
	}
	return s, nil
}

// ListSubmissions returns submissions in creation order, narrowed to what
// actor may see.
func (u *LedgerUseCase) ListSubmissions(ctx context.Context, actor domain.Actor, filter port.SubmissionFilter) ([]domain.Submission, error) {
	if err := requireRole(actor, domain.RoleCreator, domain.RoleClipper, domain.RoleAdmin); err != nil {
		return nil, err
	}
	switch actor.Role {
	case domain.RoleClipper:
		filter.ClipperID = actor.UserID
	case domain.RoleCreator:
		filter.CreatorID = actor.UserID
	}
	items, err := u.repo.ListSubmissions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return items, nil
}

// Approve approves a pending submission and debits its payout from the
// campaign in the same commit. When the budget cannot cover the payout the
// submission stays pending and domain.ErrInsufficientBudget is returned.
func (u *LedgerUseCase) Approve(ctx context.Context, actor domain.Actor, id string) (*port.ReviewResult, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	res, err := u.repo.ReviewSubmission(ctx, strings.TrimSpace(id), func(c *domain.Campaign, s *domain.Submission) error {
		return s.Approve(c, actor.UserID, u.now())
	})
	if err != nil {
		u.reviewFailed("approve", id, err)
		return nil, err
	}

	u.metrics.RecordApproved(res.Submission.PayoutAmount)
	ev := u.submissionEvent(domain.EventSubmissionApproved, actor, res.Submission)
	ev.RemainingBudget = &res.Campaign.RemainingBudget
	u.publish(ctx, ev)

	u.logger.Info("submission approved",
		slog.String("submission_id", res.Submission.ID),
		slog.String("campaign_id", res.Campaign.ID),
		slog.String("payout", res.Submission.PayoutAmount.String()),
		slog.String("remaining_budget", res.Campaign.RemainingBudget.String()),
	)
	return res, nil
}

// Reject rejects a pending submission. The campaign budget is untouched.
func (u *LedgerUseCase) Reject(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	res, err := u.repo.ReviewSubmission(ctx, strings.TrimSpace(id), func(_ *domain.Campaign, s *domain.Submission) error {
		return s.Reject(actor.UserID, u.now())
	})
	if err != nil {
		u.reviewFailed("reject", id, err)
		return nil, err
	}

	u.metrics.RecordRejected()
	u.publish(ctx, u.submissionEvent(domain.EventSubmissionRejected, actor, res.Submission))

	u.logger.Info("submission rejected", slog.String("submission_id", res.Submission.ID))
	return &res.Submission, nil
}

// MarkPaid records that an approved submission has been paid out.
func (u *LedgerUseCase) MarkPaid(ctx context.Context, actor domain.Actor, id string) (*domain.Submission, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	res, err := u.repo.ReviewSubmission(ctx, strings.TrimSpace(id), func(_ *domain.Campaign, s *domain.Submission) error {
		return s.MarkPaid(u.now())
	})
	if err != nil {
		u.reviewFailed("mark_paid", id, err)
		return nil, err
	}

	u.metrics.RecordPaid(res.Submission.PayoutAmount)
	u.publish(ctx, u.submissionEvent(domain.EventSubmissionPaid, actor, res.Submission))

	u.logger.Info("submission marked paid",
		slog.String("submission_id", res.Submission.ID),
		slog.String("payout", res.Submission.PayoutAmount.String()),
	)
	return &res.Submission, nil
}

func (u *LedgerUseCase) reviewFailed(op, id string, err error) {
	code := domain.Code(err)
	u.metrics.RecordReviewError(op, code)
	level := slog.LevelWarn
	if code == "internal" {
		level = slog.LevelError
	}
	u.logger.Log(context.Background(), level, "review failed",
		slog.String("operation", op),
		slog.String("submission_id", id),
		slog.String("reason", code),
		slog.Any("error", err),
	)
}

func (u *LedgerUseCase) submissionEvent(typ domain.EventType, actor domain.Actor, s domain.Submission) domain.Event {
	ev := u.event(typ, actor, s.CampaignID)
	ev.SubmissionID = s.ID
	ev.Status = string(s.Status)
	amount := s.PayoutAmount
	ev.Amount = &amount
	return ev
}
