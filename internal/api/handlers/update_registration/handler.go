package update_registration

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgInvalidInput       = "회사명, 신청자, 연락처는 필수 입력 항목입니다"
	msgNotFound           = "신청 내역을 찾을 수 없습니다"
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

// Handle PATCH /api/v1/admin/registrations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req models.UpdateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/registrations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateContact(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrRegistrationNotFound):
			h.logger.Warn("PATCH /admin/registrations/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/registrations/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/registrations/{id} - Failed to update: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/registrations/{id} - Registration updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
