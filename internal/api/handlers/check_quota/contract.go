package check_quota

import (
	"context"
	"time"
)

type PreflightService interface {
	CheckQuota(ctx context.Context, userID int64, date time.Time) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
