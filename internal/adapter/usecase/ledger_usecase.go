package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"clip-market/internal/adapter/metrics"
	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// LedgerUseCase provides the business logic of the payout ledger. It
// authorises the actor, runs the pure domain transitions through the
// repository's locked read-modify-write primitives and emits events and
// metrics once a change is committed.
type LedgerUseCase struct {
	repo      port.LedgerRepository
	publisher port.EventPublisher
	metrics   *metrics.LedgerMetrics
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

// Option customises a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithPublisher sets the event publisher. Events are dropped by default.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *LedgerUseCase) { u.publisher = p }
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.LedgerMetrics) Option {
	return func(u *LedgerUseCase) { u.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *LedgerUseCase) { u.logger = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *LedgerUseCase) { u.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(u *LedgerUseCase) { u.newID = newID }
}

// NewLedgerUseCase creates a new usecase with the provided repository.
func NewLedgerUseCase(repo port.LedgerRepository, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:      repo,
		publisher: nopPublisher{},
		logger:    slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.LedgerUseCase = (*LedgerUseCase)(nil)

// Authenticate resolves userID into an actor. The role always comes from
// storage, never from the request.
func (u *LedgerUseCase) Authenticate(ctx context.Context, userID string) (domain.Actor, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("load user %s: %w", userID, err)
	}
	if user == nil {
		return domain.Actor{}, fmt.Errorf("%w: unknown user %s", domain.ErrUnauthenticated, userID)
	}
	return domain.Actor{UserID: user.ID, Role: user.Role}, nil
}

func requireRole(actor domain.Actor, roles ...domain.Role) error {
	if actor.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if !slices.Contains(roles, actor.Role) {
		return fmt.Errorf("%w: role %s may not perform this action", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// publish emits events after a commit. Delivery failures are logged and
// never undo the committed change.
func (u *LedgerUseCase) publish(ctx context.Context, events ...domain.Event) {
	if err := u.publisher.Publish(ctx, events...); err != nil {
		u.logger.Warn("publish ledger events", slog.Int("count", len(events)), slog.Any("error", err))
	}
}

func (u *LedgerUseCase) event(typ domain.EventType, actor domain.Actor, campaignID string) domain.Event {
	return domain.Event{
		ID:         u.newID(),
		Type:       typ,
		CampaignID: campaignID,
		ActorID:    actor.UserID,
		OccurredAt: u.now(),
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...domain.Event) error { return nil }
