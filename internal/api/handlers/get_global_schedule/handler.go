package get_global_schedule

import (
	"net/http"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service GlobalScheduleService
	logger  Logger
}

func NewHandler(service GlobalScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/global
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/global - Failed to fetch global schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/global - Global schedule retrieved: entries_count=%d", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
