package create_rental

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// RentalRepository интерфейс репозитория бронирований
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	FindConflict(ctx context.Context, itemID int64, date time.Time, period domain.Period, classSlot domain.ClassSlot, excludeID *int64) (*domain.Rental, error)
	CountByClientBetween(ctx context.Context, clientID int64, from, to time.Time) (int, error)
}

// ItemRepository интерфейс репозитория ресурсов
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// ExclusionIndex интерфейс проверки правил блокировки слотов
type ExclusionIndex interface {
	Matches(ctx context.Context, itemID int64, weekday int, period domain.Period, classSlot domain.ClassSlot) (bool, error)
}

// ProfileRepository интерфейс репозитория профилей пользователей
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// AuthClient интерфейс клиента auth-сервиса
type AuthClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
	GetUsername(ctx context.Context, userID int64) string
}

// Calendar интерфейс календаря с фиксированной таймзоной
type Calendar interface {
	Today() time.Time
	WeekOf(d time.Time) (time.Time, time.Time)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	RentalCreated(ctx context.Context, rental *domain.Rental, actorID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
