package create_weekly_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	weeklySchedule "github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule"
)

const (
	msgInvalidDoctorID    = "Invalid doctor ID."
	msgInvalidRequestBody = "Invalid request body."
	msgValidationFailed   = "Validation failed."
	msgDoctorNotFound     = "Doctor not found."
	msgTemplateNotFound   = "Time slot template not found."
	msgDuplicateEntry     = "A schedule already exists for this day and template combination."
)

type Handler struct {
	service WeeklyScheduleService
	logger  Logger
}

func NewHandler(service WeeklyScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/weekly-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /doctors/{id}/weekly-schedule - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	var req CreateEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/weekly-schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(doctorID))
	if err != nil {
		var validationErr *weeklySchedule.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /doctors/{id}/weekly-schedule - Validation failed: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, weeklySchedule.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/weekly-schedule - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, weeklySchedule.ErrTemplateNotFound):
			h.logger.Warn("POST /doctors/{id}/weekly-schedule - Template not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, weeklySchedule.ErrDuplicateEntry):
			h.logger.Warn("POST /doctors/{id}/weekly-schedule - Duplicate entry: doctor_id=%d", doctorID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEntry)

		default:
			h.logger.Error("POST /doctors/{id}/weekly-schedule - Failed to create entry: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors/{id}/weekly-schedule - Entry created: entry_id=%d, doctor_id=%d",
		result.ID, doctorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
