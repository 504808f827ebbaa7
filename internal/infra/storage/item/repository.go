package item

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ресурсами (аудитории, оборудование)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс
func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("items").
		Columns("name", "available").
		Values(item.Name, item.Available).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "available", "created_at", "updated_at").
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.Item
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Available,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

// List получает все ресурсы в алфавитном порядке
func (r *Repository) List(ctx context.Context) ([]*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "available", "created_at", "updated_at").
		From("items").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&item.ID, &item.Name, &item.Available, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
