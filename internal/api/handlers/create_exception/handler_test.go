package create_exception

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	exceptionService "github.com/m04kA/HSC-AvailabilityService/internal/service/exception"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
)

type mockService struct {
	CreateFunc func(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error)
}

func (m *mockService) Create(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	return m.CreateFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *mockService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/42/exceptions", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"doctorId": "42"})
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
			assert.Equal(t, int64(42), req.DoctorID)
			return &models.ExceptionResponse{
				ID:            100,
				DoctorID:      req.DoctorID,
				ExceptionDate: "2026-03-15",
				ExceptionType: "UNAVAILABLE",
			}, nil
		},
	}

	rec := doRequest(t, svc, `{"exceptionDate":"2026-03-15","exceptionType":"UNAVAILABLE"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ExceptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
}

func TestHandle_DuplicateConflictMessage(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
			return nil, exceptionService.ErrDuplicateException
		},
	}

	rec := doRequest(t, svc, `{"exceptionDate":"2026-03-15","exceptionType":"UNAVAILABLE"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "An exception already exists for this date.", resp.Error)
}

func TestHandle_ValidationErrorExposesFields(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
			return nil, &exceptionService.ValidationError{Fields: map[string]string{
				"endTime": "End time must be after start time",
			}}
		},
	}

	rec := doRequest(t, svc, `{"exceptionDate":"2026-03-15","exceptionType":"CUSTOM_HOURS","startTime":"14:00","endTime":"10:00"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "End time must be after start time", resp.Fields["endTime"])
}

func TestHandle_DoctorNotFound(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
			return nil, exceptionService.ErrDoctorNotFound
		},
	}

	rec := doRequest(t, svc, `{"exceptionDate":"2026-03-15","exceptionType":"UNAVAILABLE"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadDoctorID(t *testing.T) {
	handler := NewHandler(&mockService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/abc/exceptions", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"doctorId": "abc"})
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	rec := doRequest(t, &mockService{}, `{"exceptionDate":"15.03.2026","exceptionType":"UNAVAILABLE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(t, &mockService{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
