package domain

import "slices"

// DefaultTopPerformers is how many clippers the overview ranks.
const DefaultTopPerformers = 5

// TotalPayout sums the payout of every approved submission.
func TotalPayout(subs []Submission) Money {
	total := Zero
	for _, s := range subs {
		if s.Status == SubmissionApproved {
			total = total.Add(s.PayoutAmount)
		}
	}
	return total
}

// PendingPayout sums the payout of approved submissions not yet paid.
func PendingPayout(subs []Submission) Money {
	total := Zero
	for _, s := range subs {
		if s.Status == SubmissionApproved && !s.IsPaid {
			total = total.Add(s.PayoutAmount)
		}
	}
	return total
}

// PlatformCount is one bucket of the platform distribution.
type PlatformCount struct {
	Platform Platform
	Count    int
}

// PlatformDistribution counts submissions per platform, in order of first
// appearance.
func PlatformDistribution(subs []Submission) []PlatformCount {
	index := make(map[Platform]int)
	var out []PlatformCount
	for _, s := range subs {
		i, ok := index[s.Platform]
		if !ok {
			i = len(out)
			index[s.Platform] = i
			out = append(out, PlatformCount{Platform: s.Platform})
		}
		out[i].Count++
	}
	return out
}

// Performer is a clipper's standing in the ranking. Email is filled in by
// callers that can resolve users.
type Performer struct {
	ClipperID   string
	Email       string
	Submissions int
	TotalPayout Money
}

// TopPerformers ranks clippers by number of submissions. Ties keep the order
// in which clippers first appear in subs, so callers pass submissions in
// creation order. At most limit entries are returned.
func TopPerformers(subs []Submission, limit int) []Performer {
	if limit <= 0 {
		return nil
	}
	index := make(map[string]int)
	var ranked []Performer
	for _, s := range subs {
		i, ok := index[s.ClipperID]
		if !ok {
			i = len(ranked)
			index[s.ClipperID] = i
			ranked = append(ranked, Performer{ClipperID: s.ClipperID})
		}
		ranked[i].Submissions++
		if s.Status == SubmissionApproved {
			ranked[i].TotalPayout = ranked[i].TotalPayout.Add(s.PayoutAmount)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Performer) int {
		return b.Submissions - a.Submissions
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ClipperStats is a clipper's own earnings summary.
type ClipperStats struct {
	TotalEarnings       Money
	PendingEarnings     Money
	TotalSubmissions    int
	ApprovedSubmissions int
}

// SummarizeClipper computes a clipper dashboard from their submissions.
// Pending earnings are the frozen payouts of submissions still awaiting
// review.
func SummarizeClipper(subs []Submission) ClipperStats {
	var st ClipperStats
	for _, s := range subs {
		st.TotalSubmissions++
		switch s.Status {
		case SubmissionApproved:
			st.ApprovedSubmissions++
			st.TotalEarnings = st.TotalEarnings.Add(s.PayoutAmount)
		case SubmissionPending:
			st.PendingEarnings = st.PendingEarnings.Add(s.PayoutAmount)
		}
	}
	return st
}

// CampaignStats summarises submissions received by one campaign.
type CampaignStats struct {
	Submissions     int
	Pending         int
	Approved        int
	Rejected        int
	Spent           Money
	RemainingBudget Money
}

// SummarizeCampaign counts c's submissions by status. Submissions of other
// campaigns are ignored.
func SummarizeCampaign(c Campaign, subs []Submission) CampaignStats {
	st := CampaignStats{Spent: c.Spent(), RemainingBudget: c.RemainingBudget}
	for _, s := range subs {
		if s.CampaignID != c.ID {
			continue
		}
		st.Submissions++
		switch s.Status {
		case SubmissionPending:
			st.Pending++
		case SubmissionApproved:
			st.Approved++
		case SubmissionRejected:
			st.Rejected++
		}
	}
	return st
}
