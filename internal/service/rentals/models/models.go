package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalResponse модель бронирования для ответов сервиса
type RentalResponse struct {
	ID        int64
	ItemID    int64
	ItemName  string
	Date      time.Time
	Period    domain.Period
	ClassSlot domain.ClassSlot
	Room      string
	ClientID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleRequest параметры запроса расписания
type ScheduleRequest struct {
	From   *time.Time // нижняя граница дат; nil = с сегодняшнего дня
	To     *time.Time // верхняя граница дат; nil = без ограничения
	ItemID *int64     // фильтр по ресурсу
}

// ScheduleResponse расписание бронирований со статистикой дня
type ScheduleResponse struct {
	Rentals    []*RentalResponse
	Today      time.Time // "сегодня" по фиксированной таймзоне сервиса
	TodayCount int       // бронирований на сегодня
	TotalCount int       // бронирований в выбранном диапазоне
}

// FromDomainRental конвертирует domain-модель в ответ сервиса
func FromDomainRental(rental *domain.Rental) *RentalResponse {
	return &RentalResponse{
		ID:        rental.ID,
		ItemID:    rental.ItemID,
		ItemName:  rental.ItemName,
		Date:      rental.Date,
		Period:    rental.Period,
		ClassSlot: rental.ClassSlot,
		Room:      rental.Room,
		ClientID:  rental.ClientID,
		CreatedAt: rental.CreatedAt,
		UpdatedAt: rental.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain-моделей
func FromDomainRentalList(rentals []*domain.Rental) []*RentalResponse {
	out := make([]*RentalResponse, len(rentals))
	for i, r := range rentals {
		out[i] = FromDomainRental(r)
	}
	return out
}
