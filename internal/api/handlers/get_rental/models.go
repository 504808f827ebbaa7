package get_rental

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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RentalResponse) *RentalResponse {
	return &RentalResponse{
		ID:        resp.ID,
		ItemID:    resp.ItemID,
		ItemName:  resp.ItemName,
		Date:      resp.Date.Format(domain.DateFormat),
		Period:    string(resp.Period),
		ClassSlot: string(resp.ClassSlot),
		Room:      resp.Room,
		ClientID:  resp.ClientID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
