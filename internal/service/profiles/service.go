package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles service: internal error")
)

// ProfileRepository интерфейс репозитория профилей пользователей
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис управления профилями пользователей. Профиль хранит
// только переопределение недельной квоты; nil сбрасывает пользователя
// на квоту по умолчанию из конфигурации.
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepository ProfileRepository, logger Logger) *Service {
	return &Service{profileRepo: profileRepository, logger: logger}
}

// SetQuota устанавливает переопределение недельной квоты пользователя
func (s *Service) SetQuota(ctx context.Context, userID int64, weeklyQuota *int) (*domain.UserProfile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if weeklyQuota != nil && *weeklyQuota <= 0 {
		return nil, fmt.Errorf("%w: weeklyQuota must be positive", ErrInvalidInput)
	}

	profile := &domain.UserProfile{UserID: userID, WeeklyQuota: weeklyQuota}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error("SetQuota: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: SetQuota - repository error: %v", ErrInternal, err)
	}

	if weeklyQuota != nil {
		s.logger.Info("SetQuota: user=%d weekly quota set to %d", userID, *weeklyQuota)
	} else {
		s.logger.Info("SetQuota: user=%d weekly quota reset to default", userID)
	}

	return profile, nil
}
