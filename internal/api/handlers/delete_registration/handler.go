package delete_registration

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
)

const (
	msgMissingID = "신청 ID가 필요합니다"
)

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/registrations/{id}
// Deleting an unknown id still returns 204: the operation is idempotent.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/registrations/{id} - Missing id")
			handlers.RespondBadRequest(w, msgMissingID)

		default:
			h.logger.Error("DELETE /admin/registrations/{id} - Failed to delete: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/registrations/{id} - Registration deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
