package list_rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type RentalsService interface {
	GetSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
