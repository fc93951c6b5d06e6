package domain

import "errors"

// Ledger error kinds. All of them are logical, reportable failures: callers
// translate them into user-facing messages and never retry them blindly.
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidViewCount   = errors.New("invalid view count")
	ErrInvalidInput       = errors.New("invalid input")
	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// Collaborator errors raised around the ledger core.
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInvalidViewCount, "invalid_view_count"},
	{ErrInvalidInput, "invalid_input"},
	{ErrCampaignInactive, "campaign_inactive"},
	{ErrInsufficientBudget, "insufficient_budget"},
	{ErrInvalidTransition, "invalid_transition"},
	{ErrCampaignNotFound, "campaign_not_found"},
	{ErrSubmissionNotFound, "submission_not_found"},
	{ErrUserNotFound, "user_not_found"},
	{ErrUnauthenticated, "unauthenticated"},
	{ErrForbidden, "forbidden"},
}

// Code returns a stable identifier for the error kind wrapped by err, or
// "internal" when err is not a ledger error.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}
