package resolve_week

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

type mockGlobalRepo struct {
	GetAllFunc func(ctx context.Context) ([]*domain.GlobalScheduleEntry, error)
}

func (m *mockGlobalRepo) GetAll(ctx context.Context) ([]*domain.GlobalScheduleEntry, error) {
	return m.GetAllFunc(ctx)
}

type mockWeeklyRepo struct {
	GetByDoctorIDFunc func(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error)
}

func (m *mockWeeklyRepo) GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error) {
	return m.GetByDoctorIDFunc(ctx, doctorID)
}

type mockStaffClient struct {
	GetDoctorFunc func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error)
}

func (m *mockStaffClient) GetDoctor(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
	return m.GetDoctorFunc(ctx, doctorID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
