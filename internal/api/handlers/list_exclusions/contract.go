package list_exclusions

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type ExclusionsService interface {
	List(ctx context.Context, itemID *int64) ([]*domain.ExclusionRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
