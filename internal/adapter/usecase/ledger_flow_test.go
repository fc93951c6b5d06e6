package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"clip-market/internal/adapter/memory"
	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type flowFixture struct {
	svc   *LedgerUseCase
	store *memory.Store
}

func newFlow(t *testing.T) flowFixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for _, a := range []domain.Actor{admin, creator, clipper} {
		require.NoError(t, store.CreateUser(ctx, domain.User{ID: a.UserID, Email: a.UserID + "@example.com", Role: a.Role}))
	}
	svc := newTestUseCase(store, WithIDGenerator(uuid.NewString))
	return flowFixture{svc: svc, store: store}
}

func (f flowFixture) campaign(t *testing.T, budget, reward string) *domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), creator, port.CreateCampaignReq{
		Title:         "Summer drop",
		RewardPer1000: money(t, reward),
		Budget:        money(t, budget),
	})
	require.NoError(t, err)
	return c
}

func (f flowFixture) submit(t *testing.T, campaignID string, views int64) *domain.Submission {
	t.Helper()
	s, err := f.svc.Submit(context.Background(), clipper, port.SubmitReq{
		CampaignID: campaignID,
		Platform:   "youtube",
		VideoLink:  fmt.Sprintf("https://youtube.example/watch?v=%d", views),
		ViewCount:  views,
	})
	require.NoError(t, err)
	return s
}

func TestApproveUntilBudgetRunsOut(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	c := f.campaign(t, "1000", "10")
	first := f.submit(t, c.ID, 50000)
	assert.Equal(t, "500.00", first.PayoutAmount.String())

	res, err := f.svc.Approve(ctx, admin, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", res.Campaign.RemainingBudget.String())

	second := f.submit(t, c.ID, 80000)
	assert.Equal(t, "800.00", second.PayoutAmount.String())

	_, err = f.svc.Approve(ctx, admin, second.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientBudget)

	stored, err := f.svc.GetCampaign(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", stored.RemainingBudget.String())

	still, err := f.svc.GetSubmission(ctx, admin, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPending, still.Status)
	assert.Equal(t, "800.00", still.PayoutAmount.String())

	st, err := f.svc.CampaignStats(ctx, creator, c.ID)
	require.NoError(t, err)
	want := domain.CampaignStats{
		Submissions:     2,
		Pending:         1,
		Approved:        1,
		Spent:           money(t, "500"),
		RemainingBudget: money(t, "500"),
	}
	if diff := cmp.Diff(want, *st, cmp.Comparer(func(a, b domain.Money) bool { return a.Cmp(b) == 0 })); diff != "" {
		t.Fatalf("campaign stats mismatch (-want +got):\n%s", diff)
	}
}

func TestPayoutFrozenAfterStatusChange(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	c := f.campaign(t, "100", "2.50")
	s := f.submit(t, c.ID, 1234)
	// 1234 * 2.50 / 1000 = 3.085 -> 3.09
	assert.Equal(t, "3.09", s.PayoutAmount.String())

	_, err := f.svc.SetCampaignStatus(ctx, creator, c.ID, domain.CampaignPaused)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, clipper, port.SubmitReq{CampaignID: c.ID, Platform: "tiktok", VideoLink: "x", ViewCount: 1})
	require.ErrorIs(t, err, domain.ErrCampaignInactive)

	res, err := f.svc.Approve(ctx, admin, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "3.09", res.Submission.PayoutAmount.String())
	assert.Equal(t, "96.91", res.Campaign.RemainingBudget.String())
}

func TestRejectedSubmissionsExcludedFromOverview(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	c := f.campaign(t, "1000", "10")
	a := f.submit(t, c.ID, 10000) // 100
	b := f.submit(t, c.ID, 20000) // 200
	r := f.submit(t, c.ID, 30000) // 300, rejected

	_, err := f.svc.Approve(ctx, admin, a.ID)
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, admin, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, admin, r.ID)
	require.NoError(t, err)
	paid, err := f.svc.MarkPaid(ctx, admin, a.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)

	_, err = f.svc.MarkPaid(ctx, admin, a.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	ov, err := f.svc.Overview(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ov.TotalUsers)
	assert.Equal(t, int64(3), ov.TotalSubmissions)
	assert.Equal(t, "300.00", ov.TotalPayout.String())
	assert.Equal(t, "200.00", ov.PendingPayout.String())
	assert.Equal(t, "100.00", ov.PaidPayout.String())

	stored, err := f.svc.GetCampaign(ctx, creator, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "700.00", stored.RemainingBudget.String())
}

func TestConcurrentApprovalsExactlyOneWins(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	c := f.campaign(t, "100", "10")
	s1 := f.submit(t, c.ID, 6000) // 60
	s2 := f.submit(t, c.ID, 6000) // 60

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{s1.ID, s2.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.Approve(ctx, admin, id)
		}()
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrInsufficientBudget):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	stored, err := f.svc.GetCampaign(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "40.00", stored.RemainingBudget.String())
}

func TestConcurrentApprovalsNeverOverdraw(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	c := f.campaign(t, "1000", "1")
	other := f.campaign(t, "1000", "1")

	const n = 50
	ids := make([]string, 0, 2*n)
	for range n {
		ids = append(ids, f.submit(t, c.ID, 30000).ID)     // 30 each, 33 fit
		ids = append(ids, f.submit(t, other.ID, 10000).ID) // 10 each, all fit
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Approve(ctx, admin, id)
			if err != nil && !errors.Is(err, domain.ErrInsufficientBudget) {
				t.Errorf("approve %s: %v", id, err)
			}
		}()
	}
	wg.Wait()

	approved, err := f.svc.ListSubmissions(ctx, admin, port.SubmissionFilter{CampaignID: c.ID, Status: domain.SubmissionApproved})
	require.NoError(t, err)
	assert.Len(t, approved, 33)

	got, err := f.svc.GetCampaign(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.00", got.RemainingBudget.String())
	assert.Equal(t, got.Budget, domain.TotalPayout(approved).Add(got.RemainingBudget))

	got, err = f.svc.GetCampaign(ctx, admin, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", got.RemainingBudget.String())
}

func TestCreatorSeesOnlyOwnCampaignSubmissions(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()
	rival := domain.Actor{UserID: "creator-2", Role: domain.RoleCreator}
	require.NoError(t, f.store.CreateUser(ctx, domain.User{ID: rival.UserID, Role: rival.Role}))

	mine := f.campaign(t, "100", "1")
	theirs, err := f.svc.CreateCampaign(ctx, rival, port.CreateCampaignReq{
		Title:         "Rival",
		RewardPer1000: money(t, "1"),
		Budget:        money(t, "100"),
	})
	require.NoError(t, err)
	f.submit(t, mine.ID, 1000)
	f.submit(t, theirs.ID, 1000)

	items, err := f.svc.ListSubmissions(ctx, creator, port.SubmissionFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].CampaignID)

	_, err = f.svc.CampaignStats(ctx, creator, theirs.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.SetCampaignStatus(ctx, creator, theirs.ID, domain.CampaignPaused)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
