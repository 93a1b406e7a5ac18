package template

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий шаблонов временных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все шаблоны, упорядоченные по времени начала
// Используется для наполнения формы создания недельного расписания
func (r *Repository) GetAll(ctx context.Context) ([]*domain.TimeSlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectTemplates().
		OrderBy("start_time ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectTemplates().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.TimeSlotTemplate
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.Name,
		&tpl.StartTime,
		&tpl.EndTime,
		&tpl.SlotDurationMinutes,
		&tpl.BufferTimeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}

func selectTemplates() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"buffer_time_minutes",
		"created_at",
		"updated_at",
	).From("time_slot_templates")
}

func scanTemplates(rows *sql.Rows) ([]*domain.TimeSlotTemplate, error) {
	templates := make([]*domain.TimeSlotTemplate, 0)

	for rows.Next() {
		var tpl domain.TimeSlotTemplate
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tpl.ID,
			&tpl.Name,
			&tpl.StartTime,
			&tpl.EndTime,
			&tpl.SlotDurationMinutes,
			&tpl.BufferTimeMinutes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTemplates - scan row: %v", ErrScanRow, err)
		}

		tpl.CreatedAt = createdAt.Time
		tpl.UpdatedAt = updatedAt.Time

		templates = append(templates, &tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTemplates - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}
