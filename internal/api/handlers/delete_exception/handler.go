package delete_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
	exceptionService "github.com/m04kA/HSC-AvailabilityService/internal/service/exception"
)

const (
	msgInvalidExceptionID = "Invalid exception ID."
	msgExceptionNotFound  = "Schedule exception not found."
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

// Handle DELETE /api/v1/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.service.Delete(r.Context(), exceptionID); err != nil {
		switch {
		case errors.Is(err, exceptionService.ErrExceptionNotFound):
			h.logger.Warn("DELETE /exceptions/{id} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		default:
			h.logger.Error("DELETE /exceptions/{id} - Failed to delete exception: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /exceptions/{id} - Exception deleted: exception_id=%d", exceptionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
