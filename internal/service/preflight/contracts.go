package preflight

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория бронирований
type RentalRepository interface {
	FindConflict(ctx context.Context, itemID int64, date time.Time, period domain.Period, classSlot domain.ClassSlot, excludeID *int64) (*domain.Rental, error)
	CountByClientBetween(ctx context.Context, clientID int64, from, to time.Time) (int, error)
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
	GetUsername(ctx context.Context, userID int64) string
}

// Calendar интерфейс календаря с фиксированной таймзоной
type Calendar interface {
	WeekOf(d time.Time) (time.Time, time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
