package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-market/internal/adapter/postgres"
	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
	"clip-market/internal/db"
)

// newTestRepo connects to the database named by CLIP_MARKET_TEST_PSQL,
// applies the migrations and returns a repository. The test is skipped when
// the variable is unset.
func newTestRepo(t *testing.T) *postgres.LedgerRepository {
	t.Helper()
	addr := os.Getenv("CLIP_MARKET_TEST_PSQL")
	if addr == "" {
		t.Skip("CLIP_MARKET_TEST_PSQL not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return postgres.NewLedgerRepository(pool)
}

func createUser(t *testing.T, repo port.LedgerRepository, role domain.Role) domain.User {
	t.Helper()
	id := uuid.NewString()
	u := domain.User{ID: id, Email: id + "@example.com", Role: role, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestLedgerRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	creator := createUser(t, repo, domain.RoleCreator)
	clipper := createUser(t, repo, domain.RoleClipper)

	c, err := domain.NewCampaign(domain.NewCampaignParams{
		ID:            uuid.NewString(),
		CreatorID:     creator.ID,
		Title:         "Round trip",
		RewardPer1000: domain.MoneyFromMinor(1000),
		Budget:        domain.MoneyFromMinor(100000),
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateCampaign(ctx, c))

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.RemainingBudget, got.RemainingBudget)
	assert.Equal(t, domain.CampaignActive, got.Status)

	s, err := domain.NewSubmission(c, domain.SubmitParams{
		ID:        uuid.NewString(),
		ClipperID: clipper.ID,
		Platform:  "youtube",
		VideoLink: "https://youtube.example/1",
		ViewCount: 50000,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateSubmission(ctx, s))

	res, err := repo.ReviewSubmission(ctx, s.ID, func(c *domain.Campaign, s *domain.Submission) error {
		return s.Approve(c, "reviewer", time.Now().UTC())
	})
	require.NoError(t, err)
	assert.Equal(t, "500.00", res.Campaign.RemainingBudget.String())

	stored, err := repo.GetSubmission(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, stored.Status)
	assert.Equal(t, "reviewer", stored.ReviewedBy)
	require.NotNil(t, stored.ReviewedAt)

	byCreator, err := repo.ListSubmissions(ctx, port.SubmissionFilter{CreatorID: creator.ID})
	require.NoError(t, err)
	require.Len(t, byCreator, 1)
	assert.Equal(t, s.ID, byCreator[0].ID)

	missing, err := repo.GetSubmission(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLedgerRepositoryConcurrentApprovals(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	creator := createUser(t, repo, domain.RoleCreator)
	clipper := createUser(t, repo, domain.RoleClipper)
	c, err := domain.NewCampaign(domain.NewCampaignParams{
		ID:            uuid.NewString(),
		CreatorID:     creator.ID,
		Title:         "Contended",
		RewardPer1000: domain.MoneyFromMinor(1000),
		Budget:        domain.MoneyFromMinor(10000),
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateCampaign(ctx, c))

	ids := make([]string, 2)
	for i := range ids {
		s, err := domain.NewSubmission(c, domain.SubmitParams{
			ID:        uuid.NewString(),
			ClipperID: clipper.ID,
			Platform:  "tiktok",
			VideoLink: "https://tiktok.example/x",
			ViewCount: 6000, // 60.00 of 100.00
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		require.NoError(t, repo.CreateSubmission(ctx, s))
		ids[i] = s.ID
	}

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.ReviewSubmission(ctx, id, func(c *domain.Campaign, s *domain.Submission) error {
				return s.Approve(c, "reviewer", time.Now().UTC())
			})
		}()
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		require.True(t, errors.Is(err, domain.ErrInsufficientBudget), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, won)

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "40.00", got.RemainingBudget.String())
}
