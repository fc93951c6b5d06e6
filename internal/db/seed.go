package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// seedNamespace derives stable ids for demo rows so seeding twice is a no-op.
var seedNamespace = uuid.MustParse("6f1d2a8e-3c1b-4d8e-9a55-0b7f6c2e9d41")

func seedID(name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(name)).String()
}

// Demo user ids. Send one of them in the user header to act as that user.
var (
	SeedAdminID   = seedID("user/admin")
	SeedCreatorID = seedID("user/creator")
	SeedClipperID = seedID("user/clipper-1")
)

type seedSubmission struct {
	clipper  string
	platform domain.Platform
	views    int64
	approve  bool
	reject   bool
	paid     bool
}

// Seed inserts demo users, campaigns and submissions through repo. Rows that
// already exist are skipped. Approvals go through the normal review path so
// campaign budgets stay consistent.
func Seed(ctx context.Context, repo port.LedgerRepository, logger *slog.Logger) error {
	now := time.Now().UTC()
	clipper2 := seedID("user/clipper-2")

	users := []domain.User{
		{ID: SeedAdminID, Email: "admin@clip-market.local", Role: domain.RoleAdmin},
		{ID: SeedCreatorID, Email: "creator@clip-market.local", Role: domain.RoleCreator},
		{ID: SeedClipperID, Email: "clipper1@clip-market.local", Role: domain.RoleClipper},
		{ID: clipper2, Email: "clipper2@clip-market.local", Role: domain.RoleClipper},
	}
	for _, u := range users {
		existing, err := repo.GetUser(ctx, u.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		u.CreatedAt = now
		if err = repo.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	campaigns := []struct {
		title  string
		reward int64
		budget int64
		subs   []seedSubmission
	}{
		{
			title: "Album teaser", reward: 1000, budget: 100000,
			subs: []seedSubmission{
				{clipper: SeedClipperID, platform: domain.PlatformTikTok, views: 50000, approve: true, paid: true},
				{clipper: clipper2, platform: domain.PlatformInstagram, views: 20000, approve: true},
				{clipper: SeedClipperID, platform: domain.PlatformYouTube, views: 80000},
			},
		},
		{
			title: "Game launch trailer", reward: 250, budget: 50000,
			subs: []seedSubmission{
				{clipper: clipper2, platform: domain.PlatformTwitter, views: 12345, reject: true},
				{clipper: clipper2, platform: domain.PlatformTikTok, views: 40000},
			},
		},
		{title: "Podcast highlights", reward: 500, budget: 25000},
	}

	for i, cs := range campaigns {
		id := seedID("campaign/" + cs.title)
		existing, err := repo.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		c, err := domain.NewCampaign(domain.NewCampaignParams{
			ID:            id,
			CreatorID:     SeedCreatorID,
			Title:         cs.title,
			Description:   "Demo campaign",
			VideoURL:      fmt.Sprintf("https://videos.clip-market.local/%d.mp4", i+1),
			RewardPer1000: domain.MoneyFromMinor(cs.reward),
			Budget:        domain.MoneyFromMinor(cs.budget),
			CreatedAt:     now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			return err
		}
		if err = repo.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %s: %w", cs.title, err)
		}

		for j, ss := range cs.subs {
			if err = seedOne(ctx, repo, c, ss, seedID(fmt.Sprintf("submission/%s/%d", cs.title, j)), now); err != nil {
				return err
			}
		}
	}

	logger.Info("demo data seeded",
		slog.String("admin_id", SeedAdminID),
		slog.String("creator_id", SeedCreatorID),
		slog.String("clipper_id", SeedClipperID),
	)
	return nil
}

func seedOne(ctx context.Context, repo port.LedgerRepository, c domain.Campaign, ss seedSubmission, id string, now time.Time) error {
	s, err := domain.NewSubmission(c, domain.SubmitParams{
		ID:            id,
		ClipperID:     ss.clipper,
		Platform:      string(ss.platform),
		VideoLink:     fmt.Sprintf("https://%s.example/clip/%s", ss.platform, id[:8]),
		ViewCount:     ss.views,
		ScreenshotRef: "screenshots/" + id + ".png",
		CreatedAt:     now,
	})
	if err != nil {
		return err
	}
	if err = repo.CreateSubmission(ctx, s); err != nil {
		return fmt.Errorf("seed submission: %w", err)
	}
	if !ss.approve && !ss.reject {
		return nil
	}
	_, err = repo.ReviewSubmission(ctx, id, func(c *domain.Campaign, s *domain.Submission) error {
		if ss.reject {
			return s.Reject(SeedAdminID, now)
		}
		if err := s.Approve(c, SeedAdminID, now); err != nil {
			return err
		}
		if ss.paid {
			return s.MarkPaid(now)
		}
		return nil
	})
	return err
}
