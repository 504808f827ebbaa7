package update_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	itemRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/item"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	authClient "github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// UseCase use case редактирования бронирования. Чэйн правил короче,
// чем при создании: квота и правила блокировки не перепроверяются,
// проверяются только дата (для непривилегированных) и конфликт слота
// с исключением самой редактируемой записи.
type UseCase struct {
	rentalRepo RentalRepository
	itemRepo   ItemRepository
	auth       AuthClient
	cal        Calendar
	txManager  TransactionManager
	events     EventPublisher
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepository RentalRepository,
	itemRepository ItemRepository,
	auth AuthClient,
	cal Calendar,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo: rentalRepository,
		itemRepo:   itemRepository,
		auth:       auth,
		cal:        cal,
		txManager:  txManager,
		events:     events,
		logger:     logger,
	}
}

// Execute выполняет чэйн допуска и обновляет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateRental: rental=%d, actor=%d, item=%d, date=%s, period=%s, slot=%s",
		req.RentalID, req.ActorID, req.ItemID, req.Date.Format(domain.DateFormat), req.Period, req.ClassSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Идентичность актора и привилегии
	actor, err := uc.auth.GetUser(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("UpdateRental: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("UpdateRental: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}
	caps := domain.CapabilitiesFor(actor.IsSuperuser)

	// 3. Редактируемое бронирование должно существовать
	current, err := uc.rentalRepo.GetByID(ctx, req.RentalID)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			uc.logger.Warn("UpdateRental: rental id=%d not found", req.RentalID)
			return nil, ErrRentalNotFound
		}
		uc.logger.Error("UpdateRental: failed to get rental id=%d: %v", req.RentalID, err)
		return nil, fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
	}

	// 4. Клиент: без привилегии бронирование всегда переписывается на актора
	clientID, err := resolveClient(req, caps)
	if err != nil {
		uc.logger.Warn("UpdateRental: actor id=%d cannot assign client: %v", req.ActorID, err)
		return nil, err
	}

	// 5. Проверяем существование нового ресурса
	item, err := uc.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("UpdateRental: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("UpdateRental: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 6. Правило 1: дата строго в будущем (только для непривилегированных)
	if !caps.BypassDateAndQuotaChecks {
		today := uc.cal.Today()
		if !req.Date.After(today) {
			uc.logger.Warn("UpdateRental: date %s is not after today %s",
				req.Date.Format(domain.DateFormat), today.Format(domain.DateFormat))
			return nil, ErrPastOrTodayDate
		}
	}

	// 7. Конфликт и запись выполняются в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Правило 2: конфликт по ключу слота, исключая саму запись,
		// чтобы она не конфликтовала сама с собой
		conflict, err := uc.rentalRepo.FindConflict(txCtx, req.ItemID, req.Date, req.Period, req.ClassSlot, &req.RentalID)
		if err != nil {
			uc.logger.Error("UpdateRental: conflict lookup failed: %v", err)
			return fmt.Errorf("%w: conflict lookup: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("UpdateRental: target slot held by rental id=%d (client=%d)",
				conflict.ID, conflict.ClientID)
			return &DuplicateSlotError{
				Conflicting:   conflict,
				OwnerUsername: uc.auth.GetUsername(txCtx, conflict.ClientID),
			}
		}

		// 7.2. Принятие: обновляем слот, комнату и клиента
		current.ItemID = req.ItemID
		current.ItemName = item.Name
		current.Date = req.Date
		current.Period = req.Period
		current.ClassSlot = req.ClassSlot
		current.Room = req.Room
		current.ClientID = clientID

		if err := uc.rentalRepo.Update(txCtx, current); err != nil {
			if errors.Is(err, rentalRepo.ErrDuplicateSlot) {
				return ErrDuplicateSlot
			}
			uc.logger.Error("UpdateRental: failed to update rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to update rental: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateRental: successfully updated rental id=%d", current.ID)
	uc.events.RentalUpdated(ctx, current, req.ActorID)

	return toResponse(current), nil
}
