package globalschedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий глобального (институционального) расписания.
// Записи редактируются администраторами вне этого сервиса, здесь только чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория глобального расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все записи глобального расписания с их окнами.
// Окна внутри дня упорядочены по позиции, дни - по номеру дня недели.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.GlobalScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"gs.id",
		"gs.day_of_week",
		"gsw.start_time",
		"gsw.end_time",
		"gs.created_at",
		"gs.updated_at",
	).
		From("global_schedule gs").
		LeftJoin("global_schedule_windows gsw ON gsw.schedule_id = gs.id").
		OrderBy("gs.day_of_week ASC", "gsw.position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetByDayOfWeek получает запись глобального расписания для одного дня недели
func (r *Repository) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.GlobalScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"gs.id",
		"gs.day_of_week",
		"gsw.start_time",
		"gsw.end_time",
		"gs.created_at",
		"gs.updated_at",
	).
		From("global_schedule gs").
		LeftJoin("global_schedule_windows gsw ON gsw.schedule_id = gs.id").
		Where(squirrel.Eq{"gs.day_of_week": dayOfWeek}).
		OrderBy("gsw.position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - execute query: %v", ErrExecQuery, err)
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

// scanEntries сканирует joined-строки, группируя окна по записям расписания.
// Полагается на сортировку по day_of_week из запроса.
func scanEntries(rows *sql.Rows) ([]*domain.GlobalScheduleEntry, error) {
	entries := make([]*domain.GlobalScheduleEntry, 0)
	var current *domain.GlobalScheduleEntry

	for rows.Next() {
		var (
			id                   int64
			dayOfWeek            int
			window               domain.TimeWindow
			startTime, endTime   sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		if err := rows.Scan(&id, &dayOfWeek, &startTime, &endTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		if current == nil || current.ID != id {
			current = &domain.GlobalScheduleEntry{
				ID:        id,
				DayOfWeek: dayOfWeek,
				TimeSlots: make([]domain.TimeWindow, 0),
				CreatedAt: createdAt.Time,
				UpdatedAt: updatedAt.Time,
			}
			entries = append(entries, current)
		}

		// LEFT JOIN: день может существовать без окон (закрыт по умолчанию)
		if startTime.Valid && endTime.Valid {
			if err := window.StartTime.Scan(startTime.String); err != nil {
				return nil, fmt.Errorf("%w: scanEntries - scan start_time: %v", ErrScanRow, err)
			}
			if err := window.EndTime.Scan(endTime.String); err != nil {
				return nil, fmt.Errorf("%w: scanEntries - scan end_time: %v", ErrScanRow, err)
			}
			current.TimeSlots = append(current.TimeSlots, window)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
