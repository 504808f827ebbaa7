package get_user_rentals

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// RentalResponse HTTP response model
type RentalResponse struct {
	ID        int64  `json:"id"`
	ItemID    int64  `json:"itemId"`
	ItemName  string `json:"itemName"`
	Date      string `json:"date"`
	Period    string `json:"period"`
	ClassSlot string `json:"classSlot"`
	Room      string `json:"room"`
	ClientID  int64  `json:"clientId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserRentalsResponse HTTP модель списка бронирований пользователя
type UserRentalsResponse struct {
	Rentals []*RentalResponse `json:"rentals"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(rentalsList []*models.RentalResponse) *UserRentalsResponse {
	out := make([]*RentalResponse, len(rentalsList))
	for i, r := range rentalsList {
		out[i] = &RentalResponse{
			ID:        r.ID,
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			Date:      r.Date.Format(domain.DateFormat),
			Period:    string(r.Period),
			ClassSlot: string(r.ClassSlot),
			Room:      r.Room,
			ClientID:  r.ClientID,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
			UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &UserRentalsResponse{Rentals: out}
}
