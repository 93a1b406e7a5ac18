package get_weekly_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
)

const (
	msgInvalidDoctorID = "Invalid doctor ID."
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

// Handle GET /api/v1/doctors/{doctorId}/weekly-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/weekly-schedule - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.service.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		h.logger.Error("GET /doctors/{id}/weekly-schedule - Failed to fetch entries: doctor_id=%d, error=%v",
			doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/weekly-schedule - Entries retrieved: doctor_id=%d, count=%d",
		doctorID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
