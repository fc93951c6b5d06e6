package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// defaultTxRetries bounds how often a serialisation failure is retried.
const defaultTxRetries = 5

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Locked read-modify-write operations run in a serializable
// transaction that takes the campaign row lock first.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	retries int
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool, retries: defaultTxRetries}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) CreateUser(ctx context.Context, user domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, email, role, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Role, user.CreatedAt)
	if err != nil {
		return translateWriteErr(err)
	}
	return nil
}

// GetUser returns a user by id.
func (r *LedgerRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id, email, role, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *LedgerRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *LedgerRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, title, description, video_url, reward_per_1000, budget, remaining_budget, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, c.CreatorID, c.Title, c.Description, c.VideoURL, c.RewardPer1000, c.Budget, c.RemainingBudget,
		c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return translateWriteErr(err)
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns matching filter, newest first.
func (r *LedgerRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	query, args := campaignListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateCampaign locks the campaign row, applies mutate and writes back the
// mutable columns.
func (r *LedgerRepository) UpdateCampaign(ctx context.Context, id string, mutate port.CampaignMutation) (*domain.Campaign, error) {
	var out domain.Campaign
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = mutate(&c); err != nil {
			return err
		}
		if err = writeCampaign(ctx, tx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LedgerRepository) CreateSubmission(ctx context.Context, s domain.Submission) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, clipper_id, platform, video_link, view_count, screenshot_ref, payout_amount, status, is_paid, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		s.ID, s.CampaignID, s.ClipperID, s.Platform, s.VideoLink, s.ViewCount, s.ScreenshotRef, s.PayoutAmount,
		s.Status, s.IsPaid, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return translateWriteErr(err)
	}
	return nil
}

// GetSubmission returns a submission by id.
func (r *LedgerRepository) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	s, err := scanSubmission(r.pool.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions s WHERE s.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSubmissions returns submissions matching filter in insertion order.
func (r *LedgerRepository) ListSubmissions(ctx context.Context, filter port.SubmissionFilter) ([]domain.Submission, error) {
	query, args := submissionListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		return scanSubmission(row)
	})
}

// ReviewSubmission locks the owning campaign and then the submission, runs
// review on both and persists them in the same transaction.
func (r *LedgerRepository) ReviewSubmission(ctx context.Context, id string, review port.ReviewFunc) (*port.ReviewResult, error) {
	var out port.ReviewResult
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var campaignID string
		err := tx.QueryRow(ctx, `SELECT campaign_id FROM submissions WHERE id = $1`, id).Scan(&campaignID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrSubmissionNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("find submission %s: %w", id, err)
		}

		c, err := lockCampaign(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		s, err := scanSubmission(tx.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions s WHERE s.id = $1 FOR UPDATE`, id))
		if err != nil {
			return fmt.Errorf("lock submission %s: %w", id, err)
		}

		if err = review(&c, &s); err != nil {
			return err
		}

		if err = writeCampaign(ctx, tx, c); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE submissions
SET status = $2, is_paid = $3, reviewed_by = NULLIF($4, ''), reviewed_at = $5, paid_at = $6, updated_at = $7
WHERE id = $1`, s.ID, s.Status, s.IsPaid, s.ReviewedBy, s.ReviewedAt, s.PaidAt, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update submission %s: %w", s.ID, err)
		}
		out = port.ReviewResult{Campaign: c, Submission: s}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id string) (domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("lock campaign %s: %w", id, err)
	}
	return c, nil
}

func writeCampaign(ctx context.Context, tx pgx.Tx, c domain.Campaign) error {
	_, err := tx.Exec(ctx, `UPDATE campaigns SET remaining_budget = $2, status = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.RemainingBudget, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign %s: %w", c.ID, err)
	}
	return nil
}

// inTx runs fn in a serializable transaction, retrying it from scratch when
// PostgreSQL aborts it with a serialisation failure or deadlock.
func (r *LedgerRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt <= r.retries; attempt++ {
		err = r.runTx(ctx, fn)
		if !isRetryable(err) {
			return err
		}
	}
	return err
}

func (r *LedgerRepository) runTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateCheckViolation       = "23514"
)

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

// translateWriteErr maps constraint violations on insert to ledger errors.
func translateWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%w: duplicate %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	case sqlStateForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "submissions_campaign_fk":
			return fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, pgErr.Detail)
		default:
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, pgErr.Detail)
		}
	case sqlStateCheckViolation:
		return fmt.Errorf("%w: violates %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	}
	return err
}
