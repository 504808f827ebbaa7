package rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда бронирование не найдено
	ErrRentalNotFound = errors.New("rental.repository: rental not found")

	// ErrDuplicateSlot возвращается при нарушении уникальности слота
	// (item_id, date, period, class_slot) на уровне БД
	ErrDuplicateSlot = errors.New("rental.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rental.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rental.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rental.repository: failed to scan row")
)
