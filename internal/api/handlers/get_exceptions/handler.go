package get_exceptions

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
)

const (
	msgInvalidDoctorID = "Invalid doctor ID."
	msgInvalidFromDate = "Invalid 'from' date format, expected YYYY-MM-DD."
	msgInvalidToDate   = "Invalid 'to' date format, expected YYYY-MM-DD."
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

// Handle GET /api/v1/doctors/{doctorId}/exceptions
// Query params: from (optional, YYYY-MM-DD), to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/exceptions - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	req := &models.ListExceptionsRequest{DoctorID: doctorID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /doctors/{id}/exceptions - Invalid 'from' date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		req.FromDate = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /doctors/{id}/exceptions - Invalid 'to' date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToDate)
			return
		}
		req.ToDate = &to
	}

	result, err := h.service.ListByDoctor(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /doctors/{id}/exceptions - Failed to fetch exceptions: doctor_id=%d, error=%v",
			doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/exceptions - Exceptions retrieved: doctor_id=%d, count=%d",
		doctorID, len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
