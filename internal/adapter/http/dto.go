package httpadapter

import (
	"time"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

type createCampaignRequest struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	VideoURL      string       `json:"video_url"`
	RewardPer1000 domain.Money `json:"reward_per_1000"`
	Budget        domain.Money `json:"budget"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type submitRequest struct {
	CampaignID    string `json:"campaign_id"`
	Platform      string `json:"platform"`
	VideoLink     string `json:"video_link"`
	ViewCount     int64  `json:"view_count"`
	ScreenshotRef string `json:"screenshot_ref"`
}

type campaignResponse struct {
	ID              string       `json:"id"`
	CreatorID       string       `json:"creator_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	VideoURL        string       `json:"video_url"`
	RewardPer1000   domain.Money `json:"reward_per_1000"`
	Budget          domain.Money `json:"budget"`
	RemainingBudget domain.Money `json:"remaining_budget"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		CreatorID:       c.CreatorID,
		Title:           c.Title,
		Description:     c.Description,
		VideoURL:        c.VideoURL,
		RewardPer1000:   c.RewardPer1000,
		Budget:          c.Budget,
		RemainingBudget: c.RemainingBudget,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type submissionResponse struct {
	ID            string       `json:"id"`
	CampaignID    string       `json:"campaign_id"`
	ClipperID     string       `json:"clipper_id"`
	Platform      string       `json:"platform"`
	VideoLink     string       `json:"video_link"`
	ViewCount     int64        `json:"view_count"`
	ScreenshotRef string       `json:"screenshot_ref"`
	PayoutAmount  domain.Money `json:"payout_amount"`
	Status        string       `json:"status"`
	IsPaid        bool         `json:"is_paid"`
	ReviewedBy    string       `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time   `json:"reviewed_at,omitempty"`
	PaidAt        *time.Time   `json:"paid_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func toSubmissionResponse(s domain.Submission) submissionResponse {
	return submissionResponse{
		ID:            s.ID,
		CampaignID:    s.CampaignID,
		ClipperID:     s.ClipperID,
		Platform:      string(s.Platform),
		VideoLink:     s.VideoLink,
		ViewCount:     s.ViewCount,
		ScreenshotRef: s.ScreenshotRef,
		PayoutAmount:  s.PayoutAmount,
		Status:        string(s.Status),
		IsPaid:        s.IsPaid,
		ReviewedBy:    s.ReviewedBy,
		ReviewedAt:    s.ReviewedAt,
		PaidAt:        s.PaidAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type approveResponse struct {
	Submission      submissionResponse `json:"submission"`
	RemainingBudget domain.Money       `json:"remaining_budget"`
}

type campaignStatsResponse struct {
	Submissions     int          `json:"submissions"`
	Pending         int          `json:"pending"`
	Approved        int          `json:"approved"`
	Rejected        int          `json:"rejected"`
	Spent           domain.Money `json:"spent"`
	RemainingBudget domain.Money `json:"remaining_budget"`
}

type platformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type performer struct {
	ClipperID   string       `json:"clipper_id"`
	Email       string       `json:"email,omitempty"`
	Submissions int          `json:"submissions"`
	TotalPayout domain.Money `json:"total_payout"`
}

type overviewResponse struct {
	TotalUsers       int64           `json:"total_users"`
	TotalCampaigns   int64           `json:"total_campaigns"`
	TotalSubmissions int64           `json:"total_submissions"`
	TotalPayout      domain.Money    `json:"total_payout"`
	PendingPayout    domain.Money    `json:"pending_payout"`
	PaidPayout       domain.Money    `json:"paid_payout"`
	Platforms        []platformCount `json:"platforms"`
	TopPerformers    []performer     `json:"top_performers"`
}

func toOverviewResponse(o port.Overview) overviewResponse {
	resp := overviewResponse{
		TotalUsers:       o.TotalUsers,
		TotalCampaigns:   o.TotalCampaigns,
		TotalSubmissions: o.TotalSubmissions,
		TotalPayout:      o.TotalPayout,
		PendingPayout:    o.PendingPayout,
		PaidPayout:       o.PaidPayout,
		Platforms:        make([]platformCount, 0, len(o.Platforms)),
		TopPerformers:    make([]performer, 0, len(o.TopPerformers)),
	}
	for _, p := range o.Platforms {
		resp.Platforms = append(resp.Platforms, platformCount{Platform: string(p.Platform), Count: p.Count})
	}
	for _, p := range o.TopPerformers {
		resp.TopPerformers = append(resp.TopPerformers, performer{
			ClipperID:   p.ClipperID,
			Email:       p.Email,
			Submissions: p.Submissions,
			TotalPayout: p.TotalPayout,
		})
	}
	return resp
}

type clipperStatsResponse struct {
	TotalEarnings       domain.Money `json:"total_earnings"`
	PendingEarnings     domain.Money `json:"pending_earnings"`
	TotalSubmissions    int          `json:"total_submissions"`
	ApprovedSubmissions int          `json:"approved_submissions"`
}
