package update_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	RentalID  int64            // ID редактируемого бронирования
	ActorID   int64            // ID действующего пользователя
	ItemID    int64            // Новый ресурс
	Date      time.Time        // Новая дата
	Period    domain.Period    // Новый период
	ClassSlot domain.ClassSlot // Новая аула
	Room      string           // Новая метка аудитории
	ClientID  *int64           // Переназначаемый клиент (только для привилегированных)
}

// Response модель ответа с обновленным бронированием
type Response struct {
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

func toResponse(rental *domain.Rental) *Response {
	return &Response{
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
