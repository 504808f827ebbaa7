package exclusion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с правилами блокировки слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил блокировки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Matches проверяет, заблокирован ли слот (item, weekday, period, class_slot)
// хотя бы одним правилом. NULL в колонке правила трактуется как wildcard:
// правило с пустым class_slot блокирует все аулы этого дня и периода.
func (r *Repository) Matches(
	ctx context.Context,
	itemID int64,
	weekday int,
	period domain.Period,
	classSlot domain.ClassSlot,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subQuery, args, err := psqlbuilder.Select("1").
		From("exclusion_rules").
		Where(squirrel.Eq{
			"item_id": itemID,
			"weekday": weekday,
		}).
		Where(squirrel.Or{
			squirrel.Eq{"period": nil},
			squirrel.Eq{"period": period},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"class_slot": nil},
			squirrel.Eq{"class_slot": classSlot},
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Matches - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (%s)", subQuery)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Matches - scan exists: %v", ErrScanRow, err)
	}

	return exists, nil
}

// Create создает новое правило блокировки
func (r *Repository) Create(ctx context.Context, rule *domain.ExclusionRule) (*domain.ExclusionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("exclusion_rules").
		Columns("item_id", "weekday", "period", "class_slot").
		Values(rule.ItemID, rule.Weekday, rule.Period, rule.ClassSlot).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time

	return rule, nil
}

// Delete удаляет правило блокировки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("exclusion_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// List получает все правила блокировки, опционально по одному ресурсу
func (r *Repository) List(ctx context.Context, itemID *int64) ([]*domain.ExclusionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "item_id", "weekday", "period", "class_slot", "created_at").
		From("exclusion_rules").
		OrderBy("item_id ASC", "weekday ASC", "period ASC NULLS FIRST", "class_slot ASC NULLS FIRST")

	if itemID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"item_id": *itemID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.ExclusionRule, 0)
	for rows.Next() {
		var rule domain.ExclusionRule
		var period, classSlot sql.NullString
		var createdAt sql.NullTime

		if err := rows.Scan(&rule.ID, &rule.ItemID, &rule.Weekday, &period, &classSlot, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if period.Valid {
			p := domain.Period(period.String)
			rule.Period = &p
		}
		if classSlot.Valid {
			s := domain.ClassSlot(classSlot.String)
			rule.ClassSlot = &s
		}
		rule.CreatedAt = createdAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
