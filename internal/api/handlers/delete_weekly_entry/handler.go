package delete_weekly_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	weeklySchedule "github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule"
)

const (
	msgInvalidEntryID = "Invalid schedule entry ID."
	msgEntryNotFound  = "Weekly schedule entry not found."
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

// Handle DELETE /api/v1/weekly-schedule/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entryID, err := strconv.ParseInt(vars["entryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /weekly-schedule/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.Delete(r.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, weeklySchedule.ErrEntryNotFound):
			h.logger.Warn("DELETE /weekly-schedule/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /weekly-schedule/{id} - Failed to delete entry: entry_id=%d, error=%v",
				entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /weekly-schedule/{id} - Entry deleted: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
