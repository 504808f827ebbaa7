package exclusions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	exclusionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/exclusion"
	itemRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/item"
)

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("exclusion rule not found")

	// ErrItemNotFound возвращается, когда ресурс не найден
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("exclusions service: internal error")
)

// ExclusionRepository интерфейс репозитория правил блокировки
type ExclusionRepository interface {
	Create(ctx context.Context, rule *domain.ExclusionRule) (*domain.ExclusionRule, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, itemID *int64) ([]*domain.ExclusionRule, error)
}

// ItemRepository интерфейс репозитория ресурсов
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис управления правилами блокировки слотов.
// Правила управляются администраторами вне потока бронирования.
type Service struct {
	exclusionRepo ExclusionRepository
	itemRepo      ItemRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса правил блокировки
func NewService(
	exclusionRepository ExclusionRepository,
	itemRepository ItemRepository,
	logger Logger,
) *Service {
	return &Service{
		exclusionRepo: exclusionRepository,
		itemRepo:      itemRepository,
		logger:        logger,
	}
}

// CreateRequest параметры создания правила. Пустой Period/ClassSlot
// означает wildcard - правило блокирует все значения поля.
type CreateRequest struct {
	ItemID    int64
	Weekday   int
	Period    *domain.Period
	ClassSlot *domain.ClassSlot
}

// Create создает новое правило блокировки
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.ExclusionRule, error) {
	if req.ItemID <= 0 {
		return nil, fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}
	if req.Weekday < domain.MinExclusionWeekday || req.Weekday > domain.MaxExclusionWeekday {
		return nil, fmt.Errorf("%w: weekday must be between %d (Monday) and %d (Friday)",
			ErrInvalidInput, domain.MinExclusionWeekday, domain.MaxExclusionWeekday)
	}

	if _, err := s.itemRepo.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("Create: item lookup failed for id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Create - item lookup: %v", ErrInternal, err)
	}

	rule, err := s.exclusionRepo.Create(ctx, &domain.ExclusionRule{
		ItemID:    req.ItemID,
		Weekday:   req.Weekday,
		Period:    req.Period,
		ClassSlot: req.ClassSlot,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created exclusion rule id=%d for item=%d weekday=%d", rule.ID, rule.ItemID, rule.Weekday)
	return rule, nil
}

// Delete удаляет правило блокировки
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.exclusionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exclusionRepo.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted exclusion rule id=%d", id)
	return nil
}

// List получает правила блокировки, опционально по одному ресурсу
func (s *Service) List(ctx context.Context, itemID *int64) ([]*domain.ExclusionRule, error) {
	rules, err := s.exclusionRepo.List(ctx, itemID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return rules, nil
}
