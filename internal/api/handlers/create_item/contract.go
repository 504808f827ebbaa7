package create_item

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type ItemsService interface {
	Create(ctx context.Context, name string, available bool) (*domain.Item, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
