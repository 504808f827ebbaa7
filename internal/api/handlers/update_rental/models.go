package update_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	updateRental "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental"
)

// UpdateRentalRequest HTTP request model
type UpdateRentalRequest struct {
	ItemID    int64  `json:"itemId"`
	Date      string `json:"date"`
	Period    string `json:"period"`
	ClassSlot string `json:"classSlot"`
	Room      string `json:"room"`
	ClientID  *int64 `json:"clientId,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRentalRequest) ToUseCaseRequest(rentalID, actorID int64) (*updateRental.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return nil, err
	}

	classSlot, err := domain.ParseClassSlot(r.ClassSlot)
	if err != nil {
		return nil, err
	}

	return &updateRental.Request{
		RentalID:  rentalID,
		ActorID:   actorID,
		ItemID:    r.ItemID,
		Date:      date,
		Period:    period,
		ClassSlot: classSlot,
		Room:      r.Room,
		ClientID:  r.ClientID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateRental.Response) *RentalResponse {
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
