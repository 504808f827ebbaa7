package events

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// NoopPublisher заглушка для окружений без брокера (events.enabled = false)
type NoopPublisher struct{}

// NewNoopPublisher создает publisher, который ничего не публикует
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) RentalCreated(ctx context.Context, rental *domain.Rental, actorID int64) {}
func (NoopPublisher) RentalUpdated(ctx context.Context, rental *domain.Rental, actorID int64) {}
func (NoopPublisher) RentalDeleted(ctx context.Context, rental *domain.Rental, actorID int64) {}
