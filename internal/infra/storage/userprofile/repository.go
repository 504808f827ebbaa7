package userprofile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями пользователей.
// Профиль хранит только переопределение недельной квоты; идентичность
// пользователя живет во внешнем auth-сервисе.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает профиль пользователя по его ID
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "weekly_quota", "created_at", "updated_at").
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.UserProfile
	var quota sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&quota,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan profile: %v", ErrScanRow, err)
	}

	if quota.Valid {
		q := int(quota.Int64)
		profile.WeeklyQuota = &q
	}
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}

// Upsert создает или обновляет профиль пользователя
func (r *Repository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_profiles").
		Columns("user_id", "weekly_quota").
		Values(profile.UserID, profile.WeeklyQuota).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET weekly_quota = EXCLUDED.weekly_quota, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
