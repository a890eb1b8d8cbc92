package list_registrations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
)

const (
	msgUnknownIndustry = "지원하지 않는 산업군입니다"
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

// Handle GET /api/v1/admin/industries/{industry}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	industry := vars["industry"]

	result, err := h.service.ListByIndustry(r.Context(), domain.Industry(industry))
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrUnknownIndustry):
			h.logger.Warn("GET /admin/industries/{industry}/registrations - Unknown industry: %q", industry)
			handlers.RespondBadRequest(w, msgUnknownIndustry)

		default:
			h.logger.Error("GET /admin/industries/{industry}/registrations - Failed to list: industry=%s, error=%v",
				industry, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/industries/{industry}/registrations - Listed %d registrations: industry=%s",
		result.Total, industry)
	handlers.RespondJSON(w, http.StatusOK, result)
}
