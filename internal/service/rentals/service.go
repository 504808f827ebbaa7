package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис чтения и административного удаления бронирований.
// Мутации, проходящие чэйн допуска, живут в usecase-слое.
type Service struct {
	rentalRepo RentalRepository
	cal        Calendar
	events     EventPublisher
	logger     Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	rentalRepository RentalRepository,
	cal Calendar,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		rentalRepo: rentalRepository,
		cal:        cal,
		events:     events,
		logger:     logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RentalResponse, error) {
	s.logger.Info("GetByID: fetching rental id=%d", id)

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("GetByID: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("GetByID: repository error for rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRental(rental), nil
}

// GetSchedule получает расписание предстоящих бронирований со
// статистикой на сегодня. Без нижней границы показываются бронирования
// с сегодняшнего дня.
func (s *Service) GetSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	today := s.cal.Today()

	from := req.From
	if from == nil {
		from = &today
	}

	filter := domain.RentalsFilter{
		From:   from,
		To:     req.To,
		ItemID: req.ItemID,
	}

	rentalsList, err := s.rentalRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	todayCount, err := s.rentalRepo.CountByDate(ctx, today)
	if err != nil {
		s.logger.Error("GetSchedule: today count error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - today count: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d rentals, %d today", len(rentalsList), todayCount)

	return &models.ScheduleResponse{
		Rentals:    models.FromDomainRentalList(rentalsList),
		Today:      today,
		TodayCount: todayCount,
		TotalCount: len(rentalsList),
	}, nil
}

// GetUserRentals получает историю бронирований пользователя
func (s *Service) GetUserRentals(ctx context.Context, clientID int64) ([]*models.RentalResponse, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetUserRentals: fetching rentals for client=%d", clientID)

	rentalsList, err := s.rentalRepo.List(ctx, domain.RentalsFilter{ClientID: &clientID})
	if err != nil {
		s.logger.Error("GetUserRentals: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetUserRentals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRentalList(rentalsList), nil
}

// Delete удаляет бронирование без повторной проверки бизнес-правил.
// Это осознанный административный override, а не упущение: путь удаления
// никогда не проходил чэйн допуска.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Delete: deleting rental id=%d by actor=%d", id, actorID)

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("Delete: rental id=%d not found", id)
			return ErrRentalNotFound
		}
		s.logger.Error("Delete: repository error for rental id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			return ErrRentalNotFound
		}
		s.logger.Error("Delete: failed to delete rental id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rental id=%d", id)
	s.events.RentalDeleted(ctx, rental, actorID)

	return nil
}
