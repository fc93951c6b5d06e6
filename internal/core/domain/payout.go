package domain

import "fmt"

// ViewsPerRewardUnit is the number of views a campaign's reward rate is
// quoted for.
const ViewsPerRewardUnit = 1000

// ComputePayout returns round_half_up(viewCount * rewardPer1000 / 1000).
// It is pure and places no upper bound on the result; the budget is only
// checked when a submission is approved.
func ComputePayout(viewCount int64, rewardPer1000 Money) (Money, error) {
	if viewCount < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrInvalidViewCount, viewCount)
	}
	if rewardPer1000.IsNegative() {
		return Money{}, fmt.Errorf("%w: negative reward rate %s", ErrInvalidAmount, rewardPer1000)
	}
	if viewCount == 0 {
		return Zero, nil
	}
	return rewardPer1000.MulRat(viewCount, ViewsPerRewardUnit)
}
