package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда бронирование не найдено
	ErrRentalNotFound = errors.New("rental not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rentals service: internal error")
)
