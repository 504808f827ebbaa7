package update_rental

import (
	"context"

	updateRental "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental"
)

type UpdateRentalUseCase interface {
	Execute(ctx context.Context, req *updateRental.Request) (*updateRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
