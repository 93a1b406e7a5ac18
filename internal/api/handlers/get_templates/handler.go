package get_templates

import (
	"net/http"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
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

// Handle GET /api/v1/schedule/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTemplates(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/templates - Failed to fetch templates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/templates - Templates retrieved: count=%d", len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
