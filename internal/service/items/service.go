package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("items service: internal error")
)

// ItemRepository интерфейс репозитория ресурсов
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис управления ресурсами (аудитории, оборудование)
type Service struct {
	itemRepo ItemRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(itemRepository ItemRepository, logger Logger) *Service {
	return &Service{itemRepo: itemRepository, logger: logger}
}

// Create создает новый ресурс
func (s *Service) Create(ctx context.Context, name string, available bool) (*domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxItemName {
		return nil, fmt.Errorf("%w: name too long", ErrInvalidInput)
	}

	item, err := s.itemRepo.Create(ctx, &domain.Item{Name: name, Available: available})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created item id=%d name=%s", item.ID, item.Name)
	return item, nil
}

// List получает все ресурсы в алфавитном порядке
func (s *Service) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}
