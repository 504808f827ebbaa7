package create_exclusion

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/exclusions"
)

type ExclusionsService interface {
	Create(ctx context.Context, req *exclusions.CreateRequest) (*domain.ExclusionRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
