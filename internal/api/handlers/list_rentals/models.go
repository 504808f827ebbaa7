package list_rentals

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

// ScheduleResponse HTTP модель расписания со статистикой дня
type ScheduleResponse struct {
	Rentals    []*RentalResponse `json:"rentals"`
	Today      string            `json:"today"`
	TodayCount int               `json:"todayCount"`
	TotalCount int               `json:"totalCount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	rentalsList := make([]*RentalResponse, len(resp.Rentals))
	for i, r := range resp.Rentals {
		rentalsList[i] = &RentalResponse{
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

	return &ScheduleResponse{
		Rentals:    rentalsList,
		Today:      resp.Today.Format(domain.DateFormat),
		TodayCount: resp.TodayCount,
		TotalCount: resp.TotalCount,
	}
}
