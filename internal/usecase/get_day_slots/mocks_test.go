package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

type mockExceptionRepo struct {
	GetByDoctorAndDateFunc func(ctx context.Context, doctorID int64, date time.Time) (*domain.ScheduleException, error)
}

func (m *mockExceptionRepo) GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) (*domain.ScheduleException, error) {
	return m.GetByDoctorAndDateFunc(ctx, doctorID, date)
}

type mockWeeklyRepo struct {
	GetByDoctorIDFunc func(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error)
}

func (m *mockWeeklyRepo) GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error) {
	return m.GetByDoctorIDFunc(ctx, doctorID)
}

type mockGlobalRepo struct {
	GetByDayOfWeekFunc func(ctx context.Context, dayOfWeek int) (*domain.GlobalScheduleEntry, error)
}

func (m *mockGlobalRepo) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.GlobalScheduleEntry, error) {
	return m.GetByDayOfWeekFunc(ctx, dayOfWeek)
}

type mockAppointmentRepo struct {
	GetActiveByDoctorAndDateFunc func(ctx context.Context, doctorID int64, date time.Time) ([]*domain.Appointment, error)
}

func (m *mockAppointmentRepo) GetActiveByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) ([]*domain.Appointment, error) {
	return m.GetActiveByDoctorAndDateFunc(ctx, doctorID, date)
}

type mockStaffClient struct {
	GetDoctorFunc func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error)
}

func (m *mockStaffClient) GetDoctor(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
	return m.GetDoctorFunc(ctx, doctorID)
}

// fixedTimeProvider возвращает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
