package exception

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	exceptionRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/exception"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
	"github.com/m04kA/HSC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

type mockExceptionRepo struct {
	CreateFunc                func(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error)
	GetByDoctorWithFilterFunc func(ctx context.Context, filter domain.ExceptionRangeFilter) ([]*domain.ScheduleException, error)
	DeleteFunc                func(ctx context.Context, id int64) error
}

func (m *mockExceptionRepo) Create(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
	return m.CreateFunc(ctx, exc)
}

func (m *mockExceptionRepo) GetByDoctorWithFilter(ctx context.Context, filter domain.ExceptionRangeFilter) ([]*domain.ScheduleException, error) {
	return m.GetByDoctorWithFilterFunc(ctx, filter)
}

func (m *mockExceptionRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
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

var testDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func passthroughRepo() *mockExceptionRepo {
	return &mockExceptionRepo{
		CreateFunc: func(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
			created := *exc
			created.ID = 100
			return &created, nil
		},
	}
}

func newTestService(repo *mockExceptionRepo, staff *mockStaffClient) *Service {
	if repo == nil {
		repo = passthroughRepo()
	}
	if staff == nil {
		staff = &mockStaffClient{
			GetDoctorFunc: func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
				return &staffservice.Doctor{ID: doctorID, IsActive: true}, nil
			},
		}
	}

	return NewService(repo, staff, nopLogger{})
}

func TestCreate_Unavailable(t *testing.T) {
	svc := newTestService(nil, nil)

	resp, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionUnavailable,
		Reason:        ptr.Ptr("Conference"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2026-03-15", resp.ExceptionDate)
	assert.Equal(t, "UNAVAILABLE", resp.ExceptionType)
	assert.Nil(t, resp.StartTime)
	assert.Nil(t, resp.EndTime)
}

func TestCreate_UnavailableDropsTimeFields(t *testing.T) {
	// Переданные времена игнорируются для UNAVAILABLE
	var stored *domain.ScheduleException
	repo := passthroughRepo()
	inner := repo.CreateFunc
	repo.CreateFunc = func(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
		stored = exc
		return inner(ctx, exc)
	}
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionUnavailable,
		StartTime:     ptr.Ptr(types.TimeString("10:00")),
		EndTime:       ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Nil(t, stored.StartTime)
	assert.Nil(t, stored.EndTime)
}

func TestCreate_CustomHours(t *testing.T) {
	svc := newTestService(nil, nil)

	resp, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionCustomHours,
		StartTime:     ptr.Ptr(types.TimeString("10:00")),
		EndTime:       ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM_HOURS", resp.ExceptionType)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", resp.StartTime.String())
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := newTestService(nil, nil)

	tests := []struct {
		name      string
		req       *models.CreateExceptionRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing date",
			req:       &models.CreateExceptionRequest{DoctorID: 42, ExceptionType: domain.ExceptionUnavailable},
			wantField: "exceptionDate",
		},
		{
			name:      "unknown type",
			req:       &models.CreateExceptionRequest{DoctorID: 42, ExceptionDate: testDate, ExceptionType: "HOLIDAY"},
			wantField: "exceptionType",
		},
		{
			name: "custom hours without start",
			req: &models.CreateExceptionRequest{
				DoctorID:      42,
				ExceptionDate: testDate,
				ExceptionType: domain.ExceptionCustomHours,
				EndTime:       ptr.Ptr(types.TimeString("14:00")),
			},
			wantField: "startTime",
		},
		{
			name: "custom hours bad format",
			req: &models.CreateExceptionRequest{
				DoctorID:      42,
				ExceptionDate: testDate,
				ExceptionType: domain.ExceptionCustomHours,
				StartTime:     ptr.Ptr(types.TimeString("9am")),
				EndTime:       ptr.Ptr(types.TimeString("14:00")),
			},
			wantField: "startTime",
		},
		{
			name: "end not after start",
			req: &models.CreateExceptionRequest{
				DoctorID:      42,
				ExceptionDate: testDate,
				ExceptionType: domain.ExceptionCustomHours,
				StartTime:     ptr.Ptr(types.TimeString("14:00")),
				EndTime:       ptr.Ptr(types.TimeString("10:00")),
			},
			wantField: "endTime",
			wantMsg:   "End time must be after start time",
		},
		{
			name: "equal times rejected",
			req: &models.CreateExceptionRequest{
				DoctorID:      42,
				ExceptionDate: testDate,
				ExceptionType: domain.ExceptionCustomHours,
				StartTime:     ptr.Ptr(types.TimeString("10:00")),
				EndTime:       ptr.Ptr(types.TimeString("10:00")),
			},
			wantField: "endTime",
			wantMsg:   "End time must be after start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Fields, tt.wantField)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, validationErr.Fields[tt.wantField])
			}
		})
	}
}

func TestCreate_ReasonTooLong(t *testing.T) {
	svc := newTestService(nil, nil)

	longReason := make([]byte, domain.MaxReasonLength+1)
	for i := range longReason {
		longReason[i] = 'x'
	}

	_, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionUnavailable,
		Reason:        ptr.Ptr(string(longReason)),
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "reason")
}

func TestCreate_DuplicateMapsToServiceError(t *testing.T) {
	repo := passthroughRepo()
	repo.CreateFunc = func(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
		return nil, exceptionRepo.ErrDuplicateException
	}
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionUnavailable,
	})
	assert.ErrorIs(t, err, ErrDuplicateException)
}

func TestCreate_DoctorNotFound(t *testing.T) {
	staff := &mockStaffClient{
		GetDoctorFunc: func(ctx context.Context, doctorID int64) (*staffservice.Doctor, error) {
			return nil, staffservice.ErrDoctorNotFound
		},
	}
	svc := newTestService(nil, staff)

	_, err := svc.Create(context.Background(), &models.CreateExceptionRequest{
		DoctorID:      42,
		ExceptionDate: testDate,
		ExceptionType: domain.ExceptionUnavailable,
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestListByDoctor_PassesRangeFilter(t *testing.T) {
	var gotFilter domain.ExceptionRangeFilter
	repo := passthroughRepo()
	repo.GetByDoctorWithFilterFunc = func(ctx context.Context, filter domain.ExceptionRangeFilter) ([]*domain.ScheduleException, error) {
		gotFilter = filter
		return []*domain.ScheduleException{
			{ID: 2, DoctorID: 42, ExceptionDate: testDate.AddDate(0, 0, 7), ExceptionType: domain.ExceptionUnavailable},
			{ID: 1, DoctorID: 42, ExceptionDate: testDate, ExceptionType: domain.ExceptionUnavailable},
		}, nil
	}
	svc := newTestService(repo, nil)

	from := testDate
	to := testDate.AddDate(0, 1, 0)

	resp, err := svc.ListByDoctor(context.Background(), &models.ListExceptionsRequest{
		DoctorID: 42,
		FromDate: &from,
		ToDate:   &to,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), gotFilter.DoctorID)
	assert.Equal(t, &from, gotFilter.FromDate)
	assert.Equal(t, &to, gotFilter.ToDate)

	// Порядок репозитория (сначала свежие) сохраняется
	require.Len(t, resp.Exceptions, 2)
	assert.Equal(t, int64(2), resp.Exceptions[0].ID)
	assert.Equal(t, int64(1), resp.Exceptions[1].ID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := passthroughRepo()
	repo.DeleteFunc = func(ctx context.Context, id int64) error {
		return exceptionRepo.ErrExceptionNotFound
	}
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}
