package update_rental

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrRentalNotFound возвращается, когда бронирование не найдено
	ErrRentalNotFound = errors.New("update_rental: rental not found")

	// ErrPastOrTodayDate возвращается, когда новая дата не строго в будущем
	ErrPastOrTodayDate = errors.New("update_rental: date must be in the future")

	// ErrDuplicateSlot возвращается, когда целевой слот уже занят другим
	// бронированием
	ErrDuplicateSlot = errors.New("update_rental: such a rental already exists")

	// ErrItemNotFound возвращается, когда ресурс не найден
	ErrItemNotFound = errors.New("update_rental: item not found")

	// ErrActorNotFound возвращается, когда действующий пользователь не найден
	ErrActorNotFound = errors.New("update_rental: acting user not found")

	// ErrAccessDenied возвращается при попытке назначить бронирование другому
	// пользователю без соответствующей привилегии
	ErrAccessDenied = errors.New("update_rental: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_rental: internal error")
)

// DuplicateSlotError несёт данные бронирования, уже занимающего целевой слот
type DuplicateSlotError struct {
	Conflicting   *domain.Rental
	OwnerUsername string
}

// Error описывает конфликт
func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("%v: rental id=%d holds the slot", ErrDuplicateSlot, e.Conflicting.ID)
}

// Unwrap позволяет errors.Is(err, ErrDuplicateSlot)
func (e *DuplicateSlotError) Unwrap() error {
	return ErrDuplicateSlot
}
