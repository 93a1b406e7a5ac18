package get_resolved_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	resolveWeek "github.com/m04kA/HSC-AvailabilityService/internal/usecase/resolve_week"
)

const (
	msgInvalidDoctorID = "Invalid doctor ID."
	msgDoctorNotFound  = "Doctor not found."
)

type Handler struct {
	useCase ResolveWeekUseCase
	logger  Logger
}

func NewHandler(useCase ResolveWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/availability/week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability/week - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveWeek.Request{DoctorID: doctorID})
	if err != nil {
		switch {
		case errors.Is(err, resolveWeek.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/availability/week - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, resolveWeek.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability/week - Invalid input: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		default:
			h.logger.Error("GET /doctors/{id}/availability/week - Failed to resolve week: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /doctors/{id}/availability/week - Week resolved: doctor_id=%d, days_count=%d",
		doctorID, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
