package set_user_quota

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type ProfilesService interface {
	SetQuota(ctx context.Context, userID int64, weeklyQuota *int) (*domain.UserProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
