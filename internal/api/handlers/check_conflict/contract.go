package check_conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/preflight"
)

type PreflightService interface {
	CheckConflict(ctx context.Context, itemID int64, date time.Time, period domain.Period, classSlot domain.ClassSlot) (*preflight.ConflictResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
