package weeklyschedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки postgres для нарушения unique constraint
const pqUniqueViolation = "23505"

// Repository репозиторий записей недельного расписания врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория недельного расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись недельного расписания.
// Уникальность (doctor_id, day_of_week, template_id) обеспечивается
// constraint-ом БД: нарушение транслируется в ErrDuplicateEntry (HTTP 409
// на уровне handler-а). Предварительной проверки дубликатов нет намеренно -
// два администратора могут создавать записи одновременно.
func (r *Repository) Create(ctx context.Context, entry *domain.WeeklyScheduleEntry) (*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_schedule_entries").
		Columns(
			"doctor_id",
			"day_of_week",
			"template_id",
		).
		Values(
			entry.DoctorID,
			entry.DayOfWeek,
			entry.TemplateID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetByDoctorID получает все записи недельного расписания врача вместе
// с шаблонами. Сортировка по дню недели и времени начала шаблона.
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEntries().
		Where(squirrel.Eq{"wse.doctor_id": doctorID}).
		OrderBy("wse.day_of_week ASC", "tpl.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetByID получает запись недельного расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEntries().
		Where(squirrel.Eq{"wse.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}

	return entries[0], nil
}

// Delete удаляет запись недельного расписания по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("weekly_schedule_entries").
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
		return ErrEntryNotFound
	}

	return nil
}

func selectEntries() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"wse.id",
		"wse.doctor_id",
		"wse.day_of_week",
		"wse.template_id",
		"tpl.name",
		"tpl.start_time",
		"tpl.end_time",
		"tpl.slot_duration_minutes",
		"tpl.buffer_time_minutes",
		"wse.created_at",
		"wse.updated_at",
	).
		From("weekly_schedule_entries wse").
		Join("time_slot_templates tpl ON tpl.id = wse.template_id")
}

func scanEntries(rows *sql.Rows) ([]*domain.WeeklyScheduleEntry, error) {
	entries := make([]*domain.WeeklyScheduleEntry, 0)

	for rows.Next() {
		var entry domain.WeeklyScheduleEntry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.DoctorID,
			&entry.DayOfWeek,
			&entry.TemplateID,
			&entry.Template.Name,
			&entry.Template.StartTime,
			&entry.Template.EndTime,
			&entry.Template.SlotDurationMinutes,
			&entry.Template.BufferTimeMinutes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.Template.ID = entry.TemplateID
		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
