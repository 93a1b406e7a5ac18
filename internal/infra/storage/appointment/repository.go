package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/psqlbuilder"
)

// Repository read-only репозиторий записей на прием.
// Записи создаются booking-сервисом; здесь они читаются только для
// пометки занятых слотов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей на прием
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByDoctorAndDate получает активные записи врача на конкретную дату,
// упорядоченные по времени начала. Отмененные и no-show записи исключаются.
func (r *Repository) GetActiveByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_id",
		"patient_id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": inactiveStatuses}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDoctorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDoctorAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.DoctorID,
			&appt.PatientID,
			&appt.AppointmentDate,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
