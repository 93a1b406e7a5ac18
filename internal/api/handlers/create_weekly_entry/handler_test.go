package create_weekly_entry

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
	weeklySchedule "github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

type mockService struct {
	CreateFunc func(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error)
}

func (m *mockService) Create(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
	return m.CreateFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *mockService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/42/weekly-schedule", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"doctorId": "42"})
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
			require.NotNil(t, req.DayOfWeek)
			require.NotNil(t, req.TemplateID)
			assert.Equal(t, int64(42), req.DoctorID)
			assert.Equal(t, 0, *req.DayOfWeek)
			return &models.EntryResponse{ID: 100, DoctorID: req.DoctorID, DayOfWeek: *req.DayOfWeek, TemplateID: *req.TemplateID}, nil
		},
	}

	// dayOfWeek 0 (воскресенье) должен дойти до сервиса, а не потеряться
	rec := doRequest(t, svc, `{"dayOfWeek":0,"templateId":10}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
}

func TestHandle_DuplicateConflictMessage(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
			return nil, weeklySchedule.ErrDuplicateEntry
		},
	}

	rec := doRequest(t, svc, `{"dayOfWeek":1,"templateId":10}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A schedule already exists for this day and template combination.", resp.Error)
}

func TestHandle_ValidationErrorExposesFields(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
			return nil, &weeklySchedule.ValidationError{Fields: map[string]string{
				"dayOfWeek": "dayOfWeek must be between 0 and 6",
			}}
		},
	}

	rec := doRequest(t, svc, `{"dayOfWeek":9,"templateId":10}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "dayOfWeek")
}

func TestHandle_TemplateNotFound(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
			return nil, weeklySchedule.ErrTemplateNotFound
		},
	}

	rec := doRequest(t, svc, `{"dayOfWeek":1,"templateId":99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(t, &mockService{}, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
