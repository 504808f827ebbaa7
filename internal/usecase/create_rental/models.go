package create_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ActorID   int64            // ID действующего пользователя
	ItemID    int64            // ID ресурса
	Date      time.Time        // Дата бронирования (без времени)
	Period    domain.Period    // Период (matutino/vespertino)
	ClassSlot domain.ClassSlot // Аула (1..5)
	Room      string           // Свободная метка аудитории/класса
	ClientID  *int64           // Назначаемый клиент (только для привилегированных)
}

// Response модель ответа с созданным бронированием
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
