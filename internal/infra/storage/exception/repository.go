package exception

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// pqUniqueViolation код ошибки postgres для нарушения unique constraint
const pqUniqueViolation = "23505"

// Repository репозиторий исключений расписания (date-specific overrides)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает исключение расписания.
// Уникальность (doctor_id, exception_date) обеспечивается constraint-ом БД:
// нарушение транслируется в ErrDuplicateException (HTTP 409 на уровне handler-а).
func (r *Repository) Create(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_exceptions").
		Columns(
			"doctor_id",
			"exception_date",
			"exception_type",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			exc.DoctorID,
			exc.ExceptionDate,
			exc.ExceptionType,
			exc.StartTime,
			exc.EndTime,
			exc.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateException
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return exc, nil
}

// GetByDoctorWithFilter получает исключения врача с опциональными границами периода.
// Сортировка по дате по убыванию (сначала свежие) - это контракт отображения;
// для расчета слотов используется точечный GetByDoctorAndDate.
func (r *Repository) GetByDoctorWithFilter(ctx context.Context, filter domain.ExceptionRangeFilter) ([]*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectExceptions().
		Where(squirrel.Eq{"doctor_id": filter.DoctorID})

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"exception_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"exception_date": *filter.ToDate})
	}

	query, args, err := selectBuilder.
		OrderBy("exception_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// GetByDoctorAndDate получает исключение врача на конкретную дату.
// Используется при разрешении расписания на дату: максимум одна запись
// благодаря unique constraint.
func (r *Repository) GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) (*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectExceptions().
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"exception_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions, err := scanExceptions(rows)
	if err != nil {
		return nil, err
	}
	if len(exceptions) == 0 {
		return nil, ErrExceptionNotFound
	}

	return exceptions[0], nil
}

// Delete удаляет исключение по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_exceptions").
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
		return ErrExceptionNotFound
	}

	return nil
}

func selectExceptions() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"doctor_id",
		"exception_date",
		"exception_type",
		"start_time",
		"end_time",
		"reason",
		"created_at",
		"updated_at",
	).From("schedule_exceptions")
}

func scanExceptions(rows *sql.Rows) ([]*domain.ScheduleException, error) {
	exceptions := make([]*domain.ScheduleException, 0)

	for rows.Next() {
		var exc domain.ScheduleException
		var startTime, endTime sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.DoctorID,
			&exc.ExceptionDate,
			&exc.ExceptionType,
			&startTime,
			&endTime,
			&exc.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanExceptions - scan row: %v", ErrScanRow, err)
		}

		if startTime.Valid {
			var ts types.TimeString
			if err := ts.Scan(startTime.String); err != nil {
				return nil, fmt.Errorf("%w: scanExceptions - scan start_time: %v", ErrScanRow, err)
			}
			exc.StartTime = &ts
		}
		if endTime.Valid {
			var ts types.TimeString
			if err := ts.Scan(endTime.String); err != nil {
				return nil, fmt.Errorf("%w: scanExceptions - scan end_time: %v", ErrScanRow, err)
			}
			exc.EndTime = &ts
		}

		exc.CreatedAt = createdAt.Time
		exc.UpdatedAt = updatedAt.Time

		exceptions = append(exceptions, &exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
