package preflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	profileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/userprofile"
)

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("preflight service: internal error")
)

// ConflictResult результат проверки конфликта слота
type ConflictResult struct {
	Conflicting   *domain.Rental // nil = слот свободен
	OwnerUsername string         // имя владельца конфликтующего бронирования
}

// HasConflict сообщает, занят ли слот
func (r *ConflictResult) HasConflict() bool {
	return r.Conflicting != nil
}

// UnavailableReason причина недоступности слота
type UnavailableReason string

const (
	ReasonExcluded UnavailableReason = "excluded"
	ReasonConflict UnavailableReason = "conflict"
)

// AvailabilityResult результат комбинированной проверки доступности
type AvailabilityResult struct {
	Available bool
	Reason    UnavailableReason // заполнено, когда Available = false
	Conflict  *ConflictResult   // заполнено при Reason = conflict
}

// Service read-only проверки, вызываемые клиентом до отправки формы.
// Семантика каждой проверки идентична соответствующему шагу чэйна
// допуска; проверки не имеют побочных эффектов и безопасно повторяемы.
type Service struct {
	rentalRepo  RentalRepository
	exclusions  ExclusionIndex
	profileRepo ProfileRepository
	auth        AuthClient
	cal         Calendar
	weeklyQuota int
	logger      Logger
}

// NewService создает новый экземпляр сервиса предварительных проверок
func NewService(
	rentalRepository RentalRepository,
	exclusions ExclusionIndex,
	profileRepository ProfileRepository,
	auth AuthClient,
	cal Calendar,
	weeklyQuota int,
	logger Logger,
) *Service {
	return &Service{
		rentalRepo:  rentalRepository,
		exclusions:  exclusions,
		profileRepo: profileRepository,
		auth:        auth,
		cal:         cal,
		weeklyQuota: weeklyQuota,
		logger:      logger,
	}
}

// CheckConflict проверяет, занят ли слот существующим бронированием
func (s *Service) CheckConflict(
	ctx context.Context,
	itemID int64,
	date time.Time,
	period domain.Period,
	classSlot domain.ClassSlot,
) (*ConflictResult, error) {
	conflict, err := s.rentalRepo.FindConflict(ctx, itemID, date, period, classSlot, nil)
	if err != nil {
		s.logger.Error("CheckConflict: repository error: %v", err)
		return nil, fmt.Errorf("%w: CheckConflict - repository error: %v", ErrInternal, err)
	}

	if conflict == nil {
		return &ConflictResult{}, nil
	}

	return &ConflictResult{
		Conflicting:   conflict,
		OwnerUsername: s.auth.GetUsername(ctx, conflict.ClientID),
	}, nil
}

// CheckQuota проверяет, достигнута ли недельная квота пользователя в
// неделе выбранной даты
func (s *Service) CheckQuota(ctx context.Context, userID int64, date time.Time) (bool, error) {
	weekStart, weekEnd := s.cal.WeekOf(date)

	count, err := s.rentalRepo.CountByClientBetween(ctx, userID, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("CheckQuota: repository error for user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: CheckQuota - repository error: %v", ErrInternal, err)
	}

	return count >= s.resolveQuota(ctx, userID), nil
}

// CheckAvailability комбинированная проверка: слот доступен, если он не
// закрыт правилом блокировки и не занят существующим бронированием
func (s *Service) CheckAvailability(
	ctx context.Context,
	itemID int64,
	date time.Time,
	period domain.Period,
	classSlot domain.ClassSlot,
) (*AvailabilityResult, error) {
	weekday := calendar.ISOWeekday(date)

	excluded, err := s.exclusions.Matches(ctx, itemID, weekday, period, classSlot)
	if err != nil {
		s.logger.Error("CheckAvailability: exclusion lookup failed: %v", err)
		return nil, fmt.Errorf("%w: CheckAvailability - exclusion lookup: %v", ErrInternal, err)
	}
	if excluded {
		return &AvailabilityResult{Available: false, Reason: ReasonExcluded}, nil
	}

	conflict, err := s.CheckConflict(ctx, itemID, date, period, classSlot)
	if err != nil {
		return nil, err
	}
	if conflict.HasConflict() {
		return &AvailabilityResult{Available: false, Reason: ReasonConflict, Conflict: conflict}, nil
	}

	return &AvailabilityResult{Available: true}, nil
}

// resolveQuota возвращает действующую квоту пользователя
func (s *Service) resolveQuota(ctx context.Context, userID int64) int {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("resolveQuota: profile lookup failed for user=%d: %v", userID, err)
		}
		return s.weeklyQuota
	}
	return profile.ResolveQuota(s.weeklyQuota)
}
