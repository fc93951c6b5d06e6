package port

import (
	"context"

	"clip-market/internal/core/domain"
)

// EventPublisher delivers committed ledger events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}
