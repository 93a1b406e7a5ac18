package resolve_week

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

func newTestUseCase(global *mockGlobalRepo, weekly *mockWeeklyRepo, staff *mockStaffClient) *UseCase {
	return NewUseCase(global, weekly, staff, nopLogger{})
}

func existingDoctor() *mockStaffClient {
	return &mockStaffClient{
		GetDoctorFunc: func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
			return &staffservice.Doctor{ID: doctorID, FullName: "Dr. Smith", IsActive: true}, nil
		},
	}
}

func TestExecute_ResolvesWeek(t *testing.T) {
	global := &mockGlobalRepo{
		GetAllFunc: func(ctx context.Context) ([]*domain.GlobalScheduleEntry, error) {
			return []*domain.GlobalScheduleEntry{
				{ID: 1, DayOfWeek: 1, TimeSlots: []domain.TimeWindow{{StartTime: "09:00", EndTime: "17:00"}}},
			}, nil
		},
	}
	weekly := &mockWeeklyRepo{
		GetByDoctorIDFunc: func(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(global, weekly, existingDoctor())

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.DoctorID)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, domain.SourceGlobal, resp.Days[1].Source)
	assert.False(t, resp.Days[1].IsFallbackDisplay)
	assert.True(t, resp.Days[0].IsFallbackDisplay)
}

func TestExecute_InvalidDoctorID(t *testing.T) {
	uc := newTestUseCase(nil, nil, existingDoctor())

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	staff := &mockStaffClient{
		GetDoctorFunc: func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
			return nil, staffservice.ErrDoctorNotFound
		},
	}

	uc := newTestUseCase(nil, nil, staff)

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 42})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	global := &mockGlobalRepo{
		GetAllFunc: func(ctx context.Context) ([]*domain.GlobalScheduleEntry, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := newTestUseCase(global, nil, existingDoctor())

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 42})
	assert.ErrorIs(t, err, ErrInternal)
}
