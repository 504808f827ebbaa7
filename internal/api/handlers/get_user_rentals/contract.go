package get_user_rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type RentalsService interface {
	GetUserRentals(ctx context.Context, clientID int64) ([]*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
