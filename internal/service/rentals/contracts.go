package rentals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория бронирований
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	Delete(ctx context.Context, id int64) error
}

// Calendar интерфейс календаря с фиксированной таймзоной
type Calendar interface {
	Today() time.Time
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	RentalDeleted(ctx context.Context, rental *domain.Rental, actorID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
