package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	itemRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/item"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	profileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/userprofile"
	authClient "github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// UseCase use case создания бронирования: упорядоченный чэйн правил
// допуска с short-circuit на первом отказе.
//
// Порядок правил для непривилегированного пользователя:
//  1. блокировка слота правилом исключения
//  2. дата строго в будущем
//  3. недельная квота
//  4. конфликт с существующим бронированием
//
// Привилегированный пользователь пропускает правила 2 и 3 и может
// назначить бронирование другому клиенту.
type UseCase struct {
	rentalRepo  RentalRepository
	itemRepo    ItemRepository
	exclusions  ExclusionIndex
	profileRepo ProfileRepository
	auth        AuthClient
	cal         Calendar
	txManager   TransactionManager
	events      EventPublisher
	weeklyQuota int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepository RentalRepository,
	itemRepository ItemRepository,
	exclusions ExclusionIndex,
	profileRepository ProfileRepository,
	auth AuthClient,
	cal Calendar,
	txManager TransactionManager,
	events EventPublisher,
	weeklyQuota int,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:  rentalRepository,
		itemRepo:    itemRepository,
		exclusions:  exclusions,
		profileRepo: profileRepository,
		auth:        auth,
		cal:         cal,
		txManager:   txManager,
		events:      events,
		weeklyQuota: weeklyQuota,
		logger:      logger,
	}
}

// Execute выполняет чэйн допуска и создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: actor=%d, item=%d, date=%s, period=%s, slot=%s",
		req.ActorID, req.ItemID, req.Date.Format(domain.DateFormat), req.Period, req.ClassSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем идентичность актора и разрешаем привилегии один раз
	actor, err := uc.auth.GetUser(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateRental: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("CreateRental: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}
	caps := domain.CapabilitiesFor(actor.IsSuperuser)

	// 3. Определяем клиента бронирования: актор, либо явно назначенный
	// пользователь при наличии привилегии
	clientID, err := resolveClient(req, caps)
	if err != nil {
		uc.logger.Warn("CreateRental: actor id=%d cannot assign client: %v", req.ActorID, err)
		return nil, err
	}

	// 4. Проверяем существование ресурса
	if _, err := uc.itemRepo.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("CreateRental: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateRental: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 5. Правило 1: блокировка слота административным правилом.
	// Применяется ко всем, включая привилегированных.
	weekday := calendar.ISOWeekday(req.Date)
	excluded, err := uc.exclusions.Matches(ctx, req.ItemID, weekday, req.Period, req.ClassSlot)
	if err != nil {
		uc.logger.Error("CreateRental: exclusion lookup failed: %v", err)
		return nil, fmt.Errorf("%w: exclusion lookup: %v", ErrInternal, err)
	}
	if excluded {
		uc.logger.Warn("CreateRental: slot blocked by exclusion rule: item=%d, weekday=%d, period=%s, slot=%s",
			req.ItemID, weekday, req.Period, req.ClassSlot)
		return nil, ErrExclusionBlocked
	}

	// 6. Правило 2: дата строго в будущем. "Сегодня" считается один раз
	// через календарь с фиксированной таймзоной.
	if !caps.BypassDateAndQuotaChecks {
		today := uc.cal.Today()
		if !req.Date.After(today) {
			uc.logger.Warn("CreateRental: date %s is not after today %s",
				req.Date.Format(domain.DateFormat), today.Format(domain.DateFormat))
			return nil, ErrPastOrTodayDate
		}
	}

	// Переменная для хранения результата
	var result *domain.Rental

	// 7. Квота, конфликт и вставка выполняются в одной сериализуемой
	// транзакции, чтобы два конкурентных запроса не заняли один слот
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Правило 3: недельная квота актора в неделе выбранной даты
		if !caps.BypassDateAndQuotaChecks {
			if err := uc.checkQuota(txCtx, req); err != nil {
				return err
			}
		}

		// 7.2. Правило 4: конфликт по ключу слота
		conflict, err := uc.rentalRepo.FindConflict(txCtx, req.ItemID, req.Date, req.Period, req.ClassSlot, nil)
		if err != nil {
			uc.logger.Error("CreateRental: conflict lookup failed: %v", err)
			return fmt.Errorf("%w: conflict lookup: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateRental: slot conflict with rental id=%d (client=%d)",
				conflict.ID, conflict.ClientID)
			return &SlotConflictError{
				Conflicting:   conflict,
				OwnerUsername: uc.auth.GetUsername(txCtx, conflict.ClientID),
			}
		}

		// 7.3. Принятие: сохраняем бронирование
		created, err := uc.rentalRepo.Create(txCtx, &domain.Rental{
			ItemID:    req.ItemID,
			Date:      req.Date,
			Period:    req.Period,
			ClassSlot: req.ClassSlot,
			Room:      req.Room,
			ClientID:  clientID,
		})
		if err != nil {
			// Уникальный индекс мог сработать раньше повторной проверки
			if errors.Is(err, rentalRepo.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateRental: failed to create rental: %v", err)
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRental: successfully created rental id=%d for client=%d", result.ID, clientID)
	uc.events.RentalCreated(ctx, result, req.ActorID)

	return toResponse(result), nil
}

// checkQuota проверяет недельную квоту актора: дефолт из конфигурации,
// переопределение из профиля пользователя
func (uc *UseCase) checkQuota(ctx context.Context, req *Request) error {
	weekStart, weekEnd := uc.cal.WeekOf(req.Date)

	count, err := uc.rentalRepo.CountByClientBetween(ctx, req.ActorID, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("CreateRental: weekly count failed for actor id=%d: %v", req.ActorID, err)
		return fmt.Errorf("%w: weekly count: %v", ErrInternal, err)
	}

	quota := uc.resolveQuota(ctx, req.ActorID)
	if count >= quota {
		uc.logger.Warn("CreateRental: weekly quota reached for actor id=%d: %d/%d", req.ActorID, count, quota)
		return ErrQuotaExceeded
	}

	return nil
}

// resolveQuota возвращает действующую квоту актора
func (uc *UseCase) resolveQuota(ctx context.Context, actorID int64) int {
	profile, err := uc.profileRepo.GetByUserID(ctx, actorID)
	if err != nil {
		if !errors.Is(err, profileRepo.ErrProfileNotFound) {
			// Профиль не критичен - при ошибке работаем с дефолтной квотой
			uc.logger.Warn("CreateRental: profile lookup failed for actor id=%d: %v", actorID, err)
		}
		return uc.weeklyQuota
	}
	return profile.ResolveQuota(uc.weeklyQuota)
}
