package update_rental

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RentalID <= 0 {
		return fmt.Errorf("%w: rentalID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := domain.ParsePeriod(string(req.Period)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := domain.ParseClassSlot(string(req.ClassSlot)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Room) > domain.MaxRoomLength {
		return fmt.Errorf("%w: room label too long", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	return nil
}

// resolveClient определяет клиента бронирования после редактирования
func resolveClient(req *Request, caps domain.Capabilities) (int64, error) {
	if req.ClientID == nil || *req.ClientID == req.ActorID {
		return req.ActorID, nil
	}
	if !caps.CanAssignArbitraryClient {
		return 0, ErrAccessDenied
	}
	return *req.ClientID, nil
}
