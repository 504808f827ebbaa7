package list_items

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type ItemsService interface {
	List(ctx context.Context) ([]*domain.Item, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
