package create_rental

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrExclusionBlocked возвращается, когда слот закрыт правилом блокировки
	ErrExclusionBlocked = errors.New("create_rental: slot is blocked by an exclusion rule")

	// ErrPastOrTodayDate возвращается, когда дата не строго в будущем
	ErrPastOrTodayDate = errors.New("create_rental: date must be in the future")

	// ErrQuotaExceeded возвращается при достижении недельной квоты
	ErrQuotaExceeded = errors.New("create_rental: weekly quota exceeded")

	// ErrSlotConflict возвращается, когда слот уже занят другим бронированием
	ErrSlotConflict = errors.New("create_rental: slot conflict")

	// ErrItemNotFound возвращается, когда ресурс не найден
	ErrItemNotFound = errors.New("create_rental: item not found")

	// ErrActorNotFound возвращается, когда действующий пользователь не найден
	ErrActorNotFound = errors.New("create_rental: acting user not found")

	// ErrAccessDenied возвращается при попытке назначить бронирование другому
	// пользователю без соответствующей привилегии
	ErrAccessDenied = errors.New("create_rental: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rental: internal error")
)

// SlotConflictError несёт данные конфликтующего бронирования для
// отображения пользователю: кто и что уже занял слот
type SlotConflictError struct {
	Conflicting   *domain.Rental
	OwnerUsername string
}

// Error описывает конфликт
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v: rental id=%d holds the slot", ErrSlotConflict, e.Conflicting.ID)
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
