package create_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	exceptionService "github.com/m04kA/HSC-AvailabilityService/internal/service/exception"
)

const (
	msgInvalidDoctorID    = "Invalid doctor ID."
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid exception date format, expected YYYY-MM-DD."
	msgValidationFailed   = "Validation failed."
	msgDoctorNotFound     = "Doctor not found."
	msgDuplicateException = "An exception already exists for this date."
)

type Handler struct {
	service ExceptionService
	logger  Logger
}

func NewHandler(service ExceptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /doctors/{id}/exceptions - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(doctorID)
	if err != nil {
		h.logger.Warn("POST /doctors/{id}/exceptions - Invalid exception date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		var validationErr *exceptionService.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /doctors/{id}/exceptions - Validation failed: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, exceptionService.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/exceptions - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, exceptionService.ErrDuplicateException):
			h.logger.Warn("POST /doctors/{id}/exceptions - Duplicate exception: doctor_id=%d, date=%s",
				doctorID, req.ExceptionDate)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateException)

		default:
			h.logger.Error("POST /doctors/{id}/exceptions - Failed to create exception: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors/{id}/exceptions - Exception created: exception_id=%d, doctor_id=%d",
		result.ID, doctorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
