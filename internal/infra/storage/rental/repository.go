package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolationCode = "23505"

// rentalColumns колонки rentals с именем item через JOIN
var rentalColumns = []string{
	"r.id",
	"r.item_id",
	"i.name AS item_name",
	"r.date",
	"r.period",
	"r.class_slot",
	"r.room",
	"r.client_id",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - чэйн
// создания выполняет проверку конфликта и вставку в одной сериализуемой
// транзакции.
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"item_id",
			"date",
			"period",
			"class_slot",
			"room",
			"client_id",
		).
		Values(
			rental.ItemID,
			rental.Date,
			rental.Period,
			rental.ClassSlot,
			rental.Room,
			rental.ClientID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From("rentals r").
		Join("items i ON i.id = r.item_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := scanRental(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// FindConflict ищет бронирование, занимающее слот (item, date, period, class_slot).
// excludeID исключает одно бронирование из поиска - используется при
// редактировании, чтобы запись не конфликтовала сама с собой.
// Возвращает (nil, nil), если слот свободен.
func (r *Repository) FindConflict(
	ctx context.Context,
	itemID int64,
	date time.Time,
	period domain.Period,
	classSlot domain.ClassSlot,
	excludeID *int64,
) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals r").
		Join("items i ON i.id = r.item_id").
		Where(squirrel.Eq{
			"r.item_id":    itemID,
			"r.date":       date,
			"r.period":     period,
			"r.class_slot": classSlot,
		}).
		OrderBy("r.id ASC").
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := scanRental(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// CountByClientBetween считает бронирования клиента в диапазоне дат
// включительно. Используется для проверки недельной квоты.
func (r *Repository) CountByClientBetween(ctx context.Context, clientID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rentals").
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByClientBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByClientBetween - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByDate считает бронирования на конкретную дату
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rentals").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// List получает бронирования по фильтру, отсортированные в порядке
// расписания: дата, период, номер аулы
func (r *Repository) List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals r").
		Join("items i ON i.id = r.item_id").
		OrderBy("r.date ASC", "r.period ASC", "r.class_slot ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.date": *filter.To})
	}
	if filter.ItemID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.item_id": *filter.ItemID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.client_id": *filter.ClientID})
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

	return scanRentals(rows)
}

// Update обновляет слот, комнату и клиента бронирования
func (r *Repository) Update(ctx context.Context, rental *domain.Rental) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("item_id", rental.ItemID).
		Set("date", rental.Date).
		Set("period", rental.Period).
		Set("class_slot", rental.ClassSlot).
		Set("room", rental.Room).
		Set("client_id", rental.ClientID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rental.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// Delete удаляет бронирование. Физическое удаление без повторной проверки
// бизнес-правил - административный override.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rentals").
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
		return ErrRentalNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRental сканирует одну строку в бронирование
func scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rental.ID,
		&rental.ItemID,
		&rental.ItemName,
		&rental.Date,
		&rental.Period,
		&rental.ClassSlot,
		&rental.Room,
		&rental.ClientID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

// scanRentals сканирует результаты запроса в слайс бронирований
func scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}

// isUniqueViolation проверяет нарушение уникального индекса слота
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
